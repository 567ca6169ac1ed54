package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseStoreSetGet(t *testing.T) {
	s := NewResponseStore()
	s.Set("k", `{"days":[]}`, time.Minute)

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, `{"days":[]}`, v)
}

func TestResponseStoreMiss(t *testing.T) {
	s := NewResponseStore()
	_, ok := s.Get("absent")
	assert.False(t, ok)
}

func TestResponseStoreExpiry(t *testing.T) {
	s := NewResponseStore()
	s.Set("k", "v", -time.Second)

	_, ok := s.Get("k")
	assert.False(t, ok)
}
