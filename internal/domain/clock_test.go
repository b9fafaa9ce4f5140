package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestFixedClock_Today(t *testing.T) {
	date := civil.Date{Year: 2024, Month: time.February, Day: 29}
	assert.Equal(t, date, FixedClock{Date: date}.Today())
}

func TestSystemClock_Today(t *testing.T) {
	before := civil.DateOf(time.Now())
	today := SystemClock{}.Today()
	after := civil.DateOf(time.Now())

	assert.True(t, today.IsValid())
	assert.False(t, today.Before(before))
	assert.False(t, today.After(after))
}
