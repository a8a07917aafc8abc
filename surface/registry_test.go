// Copyright 2026 The strata Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"

	strata "github.com/strata-gl/strata"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Size, opts.DevicePixelRatio), nil
}

func testOptions() Options {
	return Options{Size: strata.Size{Width: 100, Height: 100}, DevicePixelRatio: 1}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("nil Available func should mean always available")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, imageFactory, nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend still present after Unregister")
	}
}

func TestRegistryListSortsByPriority(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, imageFactory, nil)
	r.Register("high", 100, imageFactory, nil)
	r.Register("mid", 50, imageFactory, nil)

	list := r.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() has %d entries, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}
}

func TestRegistryAvailableFilters(t *testing.T) {
	r := NewRegistry()
	r.Register("up", 10, imageFactory, func() bool { return true })
	r.Register("down", 100, imageFactory, func() bool { return false })

	available := r.Available()
	if len(available) != 1 || available[0] != "up" {
		t.Errorf("Available() = %v, want [up]", available)
	}
}

func TestRegistryNew(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	s, err := r.New(testOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()

	if got, want := s.LogicalSize(), (strata.Size{Width: 100, Height: 100}); got != want {
		t.Errorf("LogicalSize() = %v, want %v", got, want)
	}
}

func TestRegistryNewPicksHighestPriority(t *testing.T) {
	r := NewRegistry()
	var selected string
	r.Register("low", 10, func(opts Options) (Surface, error) {
		selected = "low"
		return imageFactory(opts)
	}, nil)
	r.Register("high", 100, func(opts Options) (Surface, error) {
		selected = "high"
		return imageFactory(opts)
	}, nil)

	s, err := r.New(testOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()

	if selected != "high" {
		t.Errorf("selected = %s, want high", selected)
	}
}

func TestRegistryNewFallsThroughFailures(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, func(opts Options) (Surface, error) {
		return nil, errors.New("no window")
	}, nil)
	r.Register("cpu", 10, imageFactory, nil)

	s, err := r.New(testOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()

	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("New() = %T, want fallback *ImageSurface", s)
	}
}

func TestRegistryNewNoBackends(t *testing.T) {
	r := NewRegistry()

	if _, err := r.New(testOptions()); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryNewByNameNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewByName("nonexistent", testOptions())
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("NewByName() = %v, want *BackendNotFoundError", err)
	}
	if notFound.Name != "nonexistent" {
		t.Errorf("Name = %s, want nonexistent", notFound.Name)
	}
}

func TestRegistryNewByNameUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("down", 50, imageFactory, func() bool { return false })

	_, err := r.NewByName("down", testOptions())
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("NewByName() = %v, want *BackendUnavailableError", err)
	}
}

func TestRegistryFactoryError(t *testing.T) {
	r := NewRegistry()
	wantErr := errors.New("creation failed")
	r.Register("failing", 50, func(opts Options) (Surface, error) {
		return nil, wantErr
	}, nil)

	if _, err := r.NewByName("failing", testOptions()); !errors.Is(err, wantErr) {
		t.Errorf("NewByName() = %v, want factory error", err)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 10, imageFactory, nil)
	r.Register("test", 50, imageFactory, nil)

	entry, _ := r.Get("test")
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50 after re-register", entry.Priority)
	}
}

func TestGlobalRegistryHasImageBackend(t *testing.T) {
	found := false
	for _, name := range Available() {
		if name == "image" {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("built-in image backend missing from global registry")
	}

	s, err := New(testOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()
}

func TestBackendErrorMessages(t *testing.T) {
	notFound := &BackendNotFoundError{Name: "swapchain"}
	if got, want := notFound.Error(), "surface: backend not found: swapchain"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	unavailable := &BackendUnavailableError{Name: "swapchain"}
	if got, want := unavailable.Error(), "surface: backend unavailable: swapchain"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
