package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scaledash/internal/core/domain"
)

func TestRequestKey_Equal(t *testing.T) {
	k := domain.NewRequestKey("history", "a", "b")

	assert.True(t, k.Equal(domain.NewRequestKey("history", "a", "b")))
	assert.False(t, k.Equal(domain.NewRequestKey("history", "a")))
	assert.False(t, k.Equal(domain.NewRequestKey("history", "b", "a")))
	assert.True(t, domain.RequestKey(nil).Equal(domain.RequestKey{}))
}

func TestRequestKey_HasPrefix(t *testing.T) {
	k := domain.NewRequestKey("history", "a", "b")

	tests := []struct {
		name   string
		prefix domain.RequestKey
		want   bool
	}{
		{name: "empty", prefix: nil, want: true},
		{name: "first element", prefix: domain.NewRequestKey("history"), want: true},
		{name: "exact", prefix: k, want: true},
		{name: "partial element", prefix: domain.NewRequestKey("hist"), want: false},
		{name: "longer", prefix: domain.NewRequestKey("history", "a", "b", "c"), want: false},
		{name: "different", prefix: domain.NewRequestKey("info"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.HasPrefix(tt.prefix))
		})
	}
}

func TestRequestKey_String(t *testing.T) {
	assert.Equal(t, `["info"]`, domain.NewRequestKey("info").String())
	assert.Equal(t, `[]`, domain.RequestKey{}.String())
	assert.NotEqual(t,
		domain.NewRequestKey("a,b").String(),
		domain.NewRequestKey("a", "b").String(),
	)
	assert.Equal(t, domain.NewRequestKey("a", "b").Handle(), domain.NewRequestKey("a", "b").Handle())
}

func TestRequestKey_Clone(t *testing.T) {
	k := domain.NewRequestKey("history", "a")
	c := k.Clone()
	c[1] = "changed"

	assert.Equal(t, "a", k[1])
	assert.Nil(t, domain.RequestKey(nil).Clone())
}
