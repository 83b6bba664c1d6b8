//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Validates the shaders and runs the orrery with orrery.toml.
func (Run) Orrery() error {
	if err := buildShaders(); err != nil {
		return err
	}
	fmt.Println("Run orrery...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "orrery.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
