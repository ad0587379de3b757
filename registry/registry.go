// Package registry maps transform names to implementations so CLIs and the
// run service can look them up by name. Transforms register themselves from
// package init; registration is not synchronized and must not happen after
// startup.
package registry

import (
	"fmt"
	"sort"

	"github.com/nemanja-m/goscatter"
)

var transforms = make(map[string]goscatter.Transform)

func Register(name string, transform goscatter.Transform) error {
	if _, exists := transforms[name]; exists {
		return fmt.Errorf("transform already registered: %s", name)
	}
	if transform == nil {
		return fmt.Errorf("transform is nil: %s", name)
	}
	transforms[name] = transform
	return nil
}

func Get(name string) (goscatter.Transform, error) {
	transform, exists := transforms[name]
	if !exists {
		return nil, fmt.Errorf("transform not found: %s", name)
	}
	return transform, nil
}

func List() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
