package cache

import (
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/jk128/bleep"
)

type gattCache struct {
	filename string
	lock     sync.RWMutex
}

// New returns a file-backed bleep.GattCache.
func New(filename string) bleep.GattCache {
	return &gattCache{
		filename: filename,
	}
}

func (gc *gattCache) Store(mac bleep.Addr, profile bleep.Profile, replace bool) error {
	gc.lock.Lock()
	defer gc.lock.Unlock()

	cache, err := gc.loadExisting()
	if err != nil {
		return err
	}

	_, ok := cache[mac.String()]
	if ok && !replace {
		return errors.Errorf("cache already contains gatt db for %s", mac.String())
	}

	cache[mac.String()] = profile

	return gc.storeCache(cache)
}

func (gc *gattCache) Load(mac bleep.Addr) (bleep.Profile, error) {
	gc.lock.RLock()
	defer gc.lock.RUnlock()

	cache, err := gc.loadExisting()
	if err != nil {
		return bleep.Profile{}, err
	}

	p, ok := cache[mac.String()]
	if !ok {
		return bleep.Profile{}, errors.Errorf("gatt db for %s not found in cache", mac.String())
	}

	return p, nil
}

func (gc *gattCache) Clear() error {
	gc.lock.Lock()
	defer gc.lock.Unlock()

	return os.Remove(gc.filename)
}

func (gc *gattCache) loadExisting() (map[string]bleep.Profile, error) {
	_, err := os.Stat(gc.filename)
	if os.IsNotExist(err) {
		return map[string]bleep.Profile{}, nil
	}

	in, err := os.ReadFile(gc.filename)
	if err != nil {
		return nil, errors.Wrap(err, "read gatt cache")
	}

	var cache map[string]bleep.Profile
	if err := jsoniter.Unmarshal(in, &cache); err != nil {
		return nil, errors.Wrap(err, "decode gatt cache")
	}

	return cache, nil
}

func (gc *gattCache) storeCache(cache map[string]bleep.Profile) error {
	out, err := jsoniter.Marshal(cache)
	if err != nil {
		return errors.Wrap(err, "encode gatt cache")
	}

	return os.WriteFile(gc.filename, out, 0644)
}
