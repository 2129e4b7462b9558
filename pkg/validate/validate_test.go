package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	MemberID int    `json:"member_id" validate:"required,gt=0"`
	Month    int    `json:"month" validate:"required,min=1,max=12"`
	Status   string `json:"status" validate:"omitempty,oneof=pendiente pagado"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name          string
		input         sample
		expectedError string
	}{
		{
			name:  "Valid",
			input: sample{MemberID: 1, Month: 5, Status: "pagado"},
		},
		{
			name:          "Missing member",
			input:         sample{Month: 5},
			expectedError: "invalid fields: MemberID:required",
		},
		{
			name:          "Month out of range and bad status",
			input:         sample{MemberID: 1, Month: 13, Status: "x"},
			expectedError: "invalid fields: Month:max, Status:oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedError)
		})
	}
}
