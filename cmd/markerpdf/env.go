package main

import (
	"io"
	"os"
	"os/exec"
	"time"

	markerpdf "github.com/alnah/go-markerpdf"
	"github.com/alnah/go-markerpdf/internal/aruco"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, tool lookup, subprocess execution, and marker encoding.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	LookPath markerpdf.LookPathFunc
	Runner   markerpdf.CommandRunner
	Encoder  markerpdf.Encoder
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
		Runner:   &markerpdf.ExecRunner{},
		Encoder:  aruco.Encoder{},
	}
}
