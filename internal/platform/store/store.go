package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Config は埋め込みストアの設定です。
type Config struct {
	// Path はデータベースファイルを配置するディレクトリです。InMemory が false の場合は必須です。
	Path string
	// InMemory を有効にするとディスクへ永続化せずメモリ上のみで動作します。テスト用です。
	InMemory bool
	// SyncWrites は書き込みごとの fsync を有効にします。
	SyncWrites bool
	// GCInterval はバリューログ GC の実行間隔です。0 の場合は無効です。
	GCInterval time.Duration
	// GCDiscardRatio は GC を実行する破棄可能データの最小比率です。
	GCDiscardRatio float64
	// Logger は badger 内部ログの出力先です。nil の場合は内部ログを無効化します。
	Logger *slog.Logger
}

// DefaultConfig は永続運用向けの既定値を返します。
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		SyncWrites:     true,
		GCInterval:     5 * time.Minute,
		GCDiscardRatio: 0.5,
	}
}

// InMemoryConfig はテスト向けのメモリ内設定を返します。
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// Store は名前付きスロットを保持する同期的なキーバリュー媒体です。
// プロセスローカルで、再起動をまたいで値が残ります。
type Store struct {
	db     *badger.DB
	gcStop chan struct{}
	gcDone chan struct{}
}

// badgerLogger は slog.Logger を badger.Logger に適合させます。
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open は設定に従ってストアを開きます。ディレクトリが無い場合は作成します。
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	opts = opts.WithSyncWrites(cfg.SyncWrites)
	opts = opts.WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	s := &Store{db: db}

	if cfg.GCInterval > 0 && !cfg.InMemory {
		s.gcStop = make(chan struct{})
		s.gcDone = make(chan struct{})
		go s.runGC(cfg.GCInterval, cfg.GCDiscardRatio, cfg.Logger)
	}

	return s, nil
}

func (s *Store) runGC(interval time.Duration, ratio float64, logger *slog.Logger) {
	defer close(s.gcDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.gcStop:
			return
		case <-ticker.C:
			err := s.db.RunValueLogGC(ratio)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) && logger != nil {
				logger.Warn("store: value log GC failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Close は GC ループを停止しデータベースを閉じます。
func (s *Store) Close() error {
	if s.gcStop != nil {
		close(s.gcStop)
		<-s.gcDone
		s.gcStop = nil
	}
	return s.db.Close()
}

// Get は指定スロットの生の値を返します。スロットが存在しない場合は found が false になります。
func (s *Store) Get(key string) (value []byte, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return value, found, nil
}

// Set は指定スロットへ値を書き込みます。書き込みは同期的に完了します。
func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}

// Delete は指定スロットを削除します。存在しないスロットの削除はエラーになりません。
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

// Keys は prefix に一致するスロット名の一覧を返します。prefix が空の場合は全スロットを返します。
func (s *Store) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.PrefetchValues = false
		it := txn.NewIterator(itOpts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list keys: %w", err)
	}
	return keys, nil
}

// DropAll は全スロットを削除します。storectl の reset 用です。
func (s *Store) DropAll() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("store: drop all: %w", err)
	}
	return nil
}
