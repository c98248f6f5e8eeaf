// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"slices"

	"github.com/MKhiriev/go-av-booking/models"
)

// FirstPeriod and LastPeriod bound the six daily time slots.
const (
	FirstPeriod = 1
	LastPeriod  = 6
)

// Periods lists the daily time slots in order.
var Periods = []int{1, 2, 3, 4, 5, 6}

// ProgramInfo describes one instructional track and its classrooms.
type ProgramInfo struct {
	Program    models.Program
	Label      string
	Classrooms []string
}

var programs = []ProgramInfo{
	{
		Program:    models.ProgramTP,
		Label:      "TP classes",
		Classrooms: []string{"P.1A TP", "P.2A TP", "P.3A TP", "P.4A TP", "P.5A TP", "P.6A TP"},
	},
	{
		Program:    models.ProgramEP,
		Label:      "EP classes",
		Classrooms: []string{"P.1A EP", "P.2A EP", "P.3A EP", "P.4A EP", "P.5A EP", "P.6A EP"},
	},
	{
		Program:    models.ProgramSpecial,
		Label:      "Special rooms",
		Classrooms: []string{"Hall", "Library", "Music Room", "Computer Room", "STEM Room"},
	},
}

// Programs returns the three programs in display order.
func Programs() []ProgramInfo {
	out := make([]ProgramInfo, len(programs))
	for i, p := range programs {
		p.Classrooms = slices.Clone(p.Classrooms)
		out[i] = p
	}
	return out
}

// ValidProgram reports whether p is one of the fixed programs.
func ValidProgram(p models.Program) bool {
	_, ok := findProgram(p)
	return ok
}

// ClassroomsFor returns the classroom list of a program, or nil.
func ClassroomsFor(p models.Program) []string {
	info, ok := findProgram(p)
	if !ok {
		return nil
	}
	return slices.Clone(info.Classrooms)
}

// ProgramOf returns the program a classroom belongs to.
func ProgramOf(classroom string) (models.Program, bool) {
	for _, p := range programs {
		if slices.Contains(p.Classrooms, classroom) {
			return p.Program, true
		}
	}
	return "", false
}

// Classrooms returns every classroom of every program in display order.
func Classrooms() []string {
	var out []string
	for _, p := range programs {
		out = append(out, p.Classrooms...)
	}
	return out
}

// ValidPeriod reports whether period is one of the daily slots.
func ValidPeriod(period int) bool {
	return period >= FirstPeriod && period <= LastPeriod
}

func findProgram(p models.Program) (ProgramInfo, bool) {
	for _, info := range programs {
		if info.Program == p {
			return info, true
		}
	}
	return ProgramInfo{}, false
}
