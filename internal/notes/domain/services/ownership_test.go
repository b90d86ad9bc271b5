package services_test

import (
	"testing"

	"gonote/internal/notes/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name      string
		requester string
		owner     string
		want      bool
	}{
		{"owner", "u1", "u1", true},
		{"other user", "u2", "u1", false},
		{"empty requester", "", "u1", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CanModify(tt.requester, tt.owner))
		})
	}
}
