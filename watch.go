package hoverlens

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// ConfigWatcher reloads a config file when it changes on disk. Parsed
// configs arrive on Configs; read and parse failures arrive on Errors and the
// watcher keeps running.
type ConfigWatcher struct {
	Configs chan Config
	Errors  chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchConfig starts watching path. The containing directory is watched so
// that editors which replace the file on save are still seen.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	cw := &ConfigWatcher{
		Configs: make(chan Config, 1),
		Errors:  make(chan error, 1),
		path:    abs,
		watcher: w,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
		<-cw.done
		close(cw.Configs)
		close(cw.Errors)
	})
	return err
}

// run reloads once events for the file have been quiet for watchDebounce,
// so a truncate followed by a write is read as a single change.
func (cw *ConfigWatcher) run() {
	defer close(cw.done)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			cfg, err := LoadConfig(cw.path)
			if err != nil {
				cw.send(nil, err)
				continue
			}
			cw.send(&cfg, nil)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.send(nil, err)
		case <-cw.closeCh:
			return
		}
	}
}

// send delivers the newest result, replacing one the consumer has not read
// yet so a slow consumer never blocks the watcher.
func (cw *ConfigWatcher) send(cfg *Config, err error) {
	if cfg != nil {
		select {
		case <-cw.Configs:
		default:
		}
		select {
		case cw.Configs <- *cfg:
		case <-cw.closeCh:
		}
		return
	}
	select {
	case <-cw.Errors:
	default:
	}
	select {
	case cw.Errors <- err:
	case <-cw.closeCh:
	}
}
