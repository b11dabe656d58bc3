package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_HasCustomer(t *testing.T) {
	identity := Identity{Customers: []string{"acme", "globex"}}

	tests := []struct {
		name     string
		customer string
		want     bool
	}{
		{name: "owned customer", customer: "acme", want: true},
		{name: "other owned customer", customer: "globex", want: true},
		{name: "foreign customer", customer: "initech", want: false},
		{name: "empty customer", customer: "", want: false},
		{name: "case sensitive", customer: "Acme", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.HasCustomer(tt.customer))
		})
	}
}

func TestIdentity_HasCustomer_EmptySet(t *testing.T) {
	assert.False(t, Identity{}.HasCustomer("acme"))
}

func TestIdentity_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		want     string
	}{
		{
			name:     "full name",
			identity: Identity{Username: "jdoe", FirstName: "Jane", LastName: "Doe"},
			want:     "Jane Doe",
		},
		{
			name:     "first name only",
			identity: Identity{Username: "jdoe", FirstName: "Jane"},
			want:     "Jane",
		},
		{
			name:     "last name only",
			identity: Identity{Username: "jdoe", LastName: "Doe"},
			want:     "Doe",
		},
		{
			name:     "falls back to username",
			identity: Identity{Username: "jdoe"},
			want:     "jdoe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.DisplayName())
		})
	}
}

func TestSlideAlbum_Key(t *testing.T) {
	album := SlideAlbum{Title: "q1 review", Customer: "acme", FileName: "deck.sal"}
	assert.Equal(t, AlbumKey{Customer: "acme", Title: "q1 review"}, album.Key())
}
