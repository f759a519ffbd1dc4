/*
	This file holds command-line parsing for the imager tool.  A command
	is the positional command name, file arguments, and optional
	settings of the form "<key>=<value>".
*/

package main

import (
	"strconv"
	"strings"

	"github.com/pjpan/imager/pixel"
)

// Keys for setting various arguments within the command line via
// "key=value" strings.
const (
	KeyConfigFile  = "config"
	KeyValueColumn = "value"
	KeyRescale     = "rescale"
	KeyCompression = "compression"
)

var setKeys = map[string]bool{
	"config":      true,
	"value":       true,
	"rescale":     true,
	"compression": true,
	"x":           true,
	"y":           true,
	"z":           true,
	"c":           true,
}

// Command is the command name followed by arguments and optional
// settings of the form "<key>=<value>".
type Command []string

// String returns a space-separated command line.
func (cmd Command) String() string {
	return strings.Join([]string(cmd), " ")
}

// Name returns the first argument, assumed to be the command name.
func (cmd Command) Name() string {
	if len(cmd) == 0 {
		return ""
	}
	return cmd[0]
}

// Parameter scans a command for any "key=value" argument and returns
// the value of the passed 'key'.
func (cmd Command) Parameter(key string) (value string, found bool) {
	if len(cmd) > 1 {
		for _, arg := range cmd[1:] {
			elems := strings.Split(arg, "=")
			if len(elems) == 2 && elems[0] == key {
				value = elems[1]
				found = true
				return
			}
		}
	}
	return
}

// FileArgs sets a variadic argument set of string pointers to command
// arguments, ignoring setting arguments of the form "<key>=<value>".
// If there aren't enough arguments to set a target, the target is set
// to the empty string.  It returns an 'overflow' slice that has all
// arguments beyond those needed for targets.
func (cmd Command) FileArgs(targets ...*string) (overflow []string) {
	overflow = make([]string, 0, len(cmd))
	for _, target := range targets {
		*target = ""
	}
	if len(cmd) > 1 {
		numTargets := len(targets)
		curTarget := 0
		for _, arg := range cmd[1:] {
			optionalSet := false
			elems := strings.Split(arg, "=")
			if len(elems) == 2 {
				_, optionalSet = setKeys[elems[0]]
			}
			if !optionalSet {
				if curTarget >= numTargets {
					overflow = append(overflow, arg)
				} else {
					*(targets[curTarget]) = arg
				}
				curTarget++
			}
		}
	}
	return
}

// AxisSpec gathers any x=, y=, z=, c= settings into a partial axis
// specification.
func (cmd Command) AxisSpec() (pixel.AxisSpec, error) {
	var spec pixel.AxisSpec
	for _, axis := range []struct {
		key string
		opt *pixel.OptInt32
	}{
		{"x", &spec.X}, {"y", &spec.Y}, {"z", &spec.Z}, {"c", &spec.C},
	} {
		if s, found := cmd.Parameter(axis.key); found {
			v, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return spec, err
			}
			*axis.opt = pixel.SomeInt32(int32(v))
		}
	}
	return spec, nil
}
