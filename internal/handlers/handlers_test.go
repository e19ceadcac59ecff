package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/config"
)

func TestFormViewLookups(t *testing.T) {
	form := FormView{Fields: []FieldView{
		{Name: "firstName"},
		{Name: "email", Error: "Please enter a valid email"},
	}}
	require.True(t, form.HasErrors())

	fv, ok := form.Field("email")
	require.True(t, ok)
	require.Equal(t, "field-email", fv.ID())
	require.Equal(t, "field-email-error", fv.ErrorID())

	_, ok = form.Field("phone")
	require.False(t, ok)

	require.False(t, FormView{Fields: []FieldView{{Name: "x"}}}.HasErrors())
}

func TestAnalyticsFromConfig(t *testing.T) {
	require.False(t, AnalyticsFromConfig(config.AnalyticsConfig{}).Enabled())
	a := AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-TEST"})
	require.True(t, a.Enabled())
	require.Equal(t, "G-TEST", a.GA4MeasurementID)
}
