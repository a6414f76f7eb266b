package cache

import (
	"os"
	"reflect"
	"testing"

	"github.com/jk128/bleep"
)

func testProfile() bleep.Profile {
	return bleep.Profile{
		Characteristics: []bleep.CharacteristicSnapshot{{
			Handle:      3,
			ValueHandle: 4,
			EndHandle:   6,
			UUID:        "2a37",
			Property:    bleep.CharNotify,
			Descriptors: []bleep.DescriptorSnapshot{
				{Handle: 5, UUID: "2901"},
				{Handle: 6, UUID: "2902"},
			},
		}},
	}
}

func TestGattCache_Store(t *testing.T) {
	defer os.Remove("./test.cache")
	p := testProfile()

	c := New("./test.cache")
	err := c.Store(bleep.NewAddr("12:34:56:78:90:ab"), p, false)
	if err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}

	loaded, err := c.Load(bleep.NewAddr("12:34:56:78:90:ab"))
	if err != nil {
		t.Fatalf("expected to find mac in cache but did not: %s", err)
	}

	if !reflect.DeepEqual(p, loaded) {
		t.Fatalf("stored and loaded caches are not equal")
	}
}

func TestGattCache_StoreNoReplace(t *testing.T) {
	defer os.Remove("./test.cache")
	c := New("./test.cache")

	if err := c.Store(bleep.NewAddr("12:34:56:78:90:ab"), testProfile(), false); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
	if err := c.Store(bleep.NewAddr("12:34:56:78:90:ab"), bleep.Profile{}, false); err == nil {
		t.Fatal("expected duplicate store to fail without replace")
	}
	if err := c.Store(bleep.NewAddr("12:34:56:78:90:ab"), bleep.Profile{}, true); err != nil {
		t.Fatalf("expected nil error but got %s instead", err)
	}
}

func TestGattCache_LoadMissing(t *testing.T) {
	defer os.Remove("./test.cache")
	c := New("./test.cache")

	if _, err := c.Load(bleep.NewAddr("aa:bb:cc:dd:ee:ff")); err == nil {
		t.Fatal("expected load of unknown mac to fail")
	}
}
