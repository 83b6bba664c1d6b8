//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

var shaderSources = []string{"phong.vert", "phong.frag", "text.vert", "text.frag"}

// Validates the GLSL sources with glslangValidator.
func (Build) Shaders() error {
	return buildShaders()
}

// Builds the orrery binary into bin/.
func (Build) Binary() error {
	mg.Deps(Build.Shaders)
	fmt.Println("Building orrery...")
	if _, err := executeCmd("go", withArgs("build", "-o", filepath.Join("bin", "orrery"), "."), withStream()); err != nil {
		return err
	}
	return nil
}

func buildShaders() error {
	for _, s := range shaderSources {
		if _, err := executeCmd("glslangValidator", withArgs(s), withDir(filepath.Join("assets", "shaders"))); err != nil {
			return err
		}
	}
	return nil
}

// Runs the test suite.
func Test() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
