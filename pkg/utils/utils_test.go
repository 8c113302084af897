package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrettyDate(t *testing.T) {
	ts := time.Date(2024, time.February, 5, 14, 3, 9, 0, time.UTC)
	assert.Equal(t, "2/5/2024, 2:03:09 PM", PrettyDate(ts))
}

func TestPrettyTimestamp(t *testing.T) {
	assert.Equal(t, "2/5/2024, 2:03:09 PM", PrettyTimestamp("2024-02-05T14:03:09Z"))
	assert.Equal(t, "2/5/2024, 2:03:09 PM", PrettyTimestamp("2024-02-05T14:03:09.123456"))
	assert.Equal(t, "2 hours ago", PrettyTimestamp("2 hours ago"))
}

func TestToPointer(t *testing.T) {
	p := ToPointer(173.5)
	assert.Equal(t, 173.5, *p)
}
