// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package booking

import (
	"testing"

	"github.com/MKhiriev/go-av-booking/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]models.Status{
		{models.StatusBooked, models.StatusInUse},
		{models.StatusInUse, models.StatusAwaitingReturn},
		{models.StatusAwaitingReturn, models.StatusReturned},
		{models.StatusBooked, models.StatusCancelled},
		{models.StatusInUse, models.StatusCancelled},
		{models.StatusAwaitingReturn, models.StatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]models.Status{
		{models.StatusReturned, models.StatusCancelled},
		{models.StatusCancelled, models.StatusBooked},
		{models.StatusBooked, models.StatusReturned},
		{models.StatusInUse, models.StatusBooked},
		{models.StatusBooked, models.StatusBooked},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestCanSetStatus(t *testing.T) {
	admin := models.User{Name: "Admin", Role: models.RoleAdmin}
	msChan := models.User{Name: "Ms Chan", Role: models.RoleTeacher}
	wong := models.User{Name: "Mr Wong", Role: models.RoleTeacher}

	own := models.Booking{TeacherName: "Ms Chan", Status: models.StatusInUse}

	assert.True(t, CanSetStatus(admin, own, models.StatusReturned))
	assert.True(t, CanSetStatus(msChan, own, models.StatusCancelled))
	assert.True(t, CanSetStatus(msChan, own, models.StatusAwaitingReturn))
	assert.False(t, CanSetStatus(msChan, own, models.StatusReturned))
	assert.False(t, CanSetStatus(wong, own, models.StatusCancelled))

	booked := own
	booked.Status = models.StatusBooked
	assert.False(t, CanSetStatus(msChan, booked, models.StatusAwaitingReturn))
}

func TestCanBookFor(t *testing.T) {
	admin := models.User{Name: "Admin", Role: models.RoleAdmin}
	teacher := models.User{Name: "Ms Chan", Role: models.RoleTeacher}

	assert.True(t, CanBookFor(admin, "Ms Chan"))
	assert.True(t, CanBookFor(teacher, "Ms Chan"))
	assert.False(t, CanBookFor(teacher, "Mr Wong"))
	assert.False(t, CanDelete(teacher))
	assert.True(t, CanDelete(admin))
}

func TestCatalog(t *testing.T) {
	assert.Len(t, Programs(), 3)
	assert.True(t, ValidProgram(models.ProgramTP))
	assert.False(t, ValidProgram("XX"))

	p, ok := ProgramOf("P.1A TP")
	assert.True(t, ok)
	assert.Equal(t, models.ProgramTP, p)

	rooms := ClassroomsFor(models.ProgramSpecial)
	rooms[0] = "changed"
	assert.Equal(t, "Hall", ClassroomsFor(models.ProgramSpecial)[0])

	assert.True(t, ValidPeriod(1))
	assert.True(t, ValidPeriod(6))
	assert.False(t, ValidPeriod(0))
	assert.False(t, ValidPeriod(7))
}
