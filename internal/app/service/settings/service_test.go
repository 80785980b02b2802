package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     UpdateSettingsRequest
		wantErr bool
	}{
		{name: "valid", req: UpdateSettingsRequest{RecipientEmail: "me@example.test", LeadTimeDays: 3}},
		{name: "lead min", req: UpdateSettingsRequest{RecipientEmail: "me@example.test", LeadTimeDays: 1}},
		{name: "lead max", req: UpdateSettingsRequest{RecipientEmail: "me@example.test", LeadTimeDays: 7}},
		{name: "missing email", req: UpdateSettingsRequest{LeadTimeDays: 3}, wantErr: true},
		{name: "not an address", req: UpdateSettingsRequest{RecipientEmail: "nope", LeadTimeDays: 3}, wantErr: true},
		{name: "lead zero", req: UpdateSettingsRequest{RecipientEmail: "me@example.test", LeadTimeDays: 0}, wantErr: true},
		{name: "lead too long", req: UpdateSettingsRequest{RecipientEmail: "me@example.test", LeadTimeDays: 8}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
