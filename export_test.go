package orgscout_test

import (
	"testing"
	"time"

	"github.com/fwojciec/orgscout"
	"github.com/stretchr/testify/assert"
)

func TestExportFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Black Hills State University", "Black_Hills_State_University_Organizations.xlsx"},
		{"St. Mary's College", "St_Marys_College_Organizations.xlsx"},
		{"Texas A&M University-Commerce", "Texas_AM_University-Commerce_Organizations.xlsx"},
		{"  Université Laval ", "Université_Laval_Organizations.xlsx"},
		{"../../etc/passwd", "etcpasswd_Organizations.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, orgscout.ExportFileName(tt.name))
		})
	}
}

func TestCombinedExportFileName(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Organizations_Combined_20260301_0905.xlsx", orgscout.CombinedExportFileName(at))
}
