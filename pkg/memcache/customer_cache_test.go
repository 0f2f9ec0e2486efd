package mem

import (
	"sync"
	"testing"
)

func TestCustomerIDsSetGet(t *testing.T) {
	cache := NewCustomerIDs()

	if _, ok := cache.Get("default"); ok {
		t.Error("empty cache should miss")
	}

	cache.Set("default", "cust-1")
	id, ok := cache.Get("default")
	if !ok || id != "cust-1" {
		t.Errorf("got %q/%v, want cust-1/true", id, ok)
	}

	cache.Set("default", "cust-2")
	if id, _ := cache.Get("default"); id != "cust-2" {
		t.Errorf("overwrite failed, got %q", id)
	}
}

func TestCustomerIDsConcurrentAccess(t *testing.T) {
	cache := NewCustomerIDs()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Set("default", "cust-1")
			cache.Get("default")
		}()
	}
	wg.Wait()

	if id, ok := cache.Get("default"); !ok || id != "cust-1" {
		t.Errorf("got %q/%v after concurrent writes", id, ok)
	}
}
