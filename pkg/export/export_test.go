package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Columns: []Column{{Key: "name", Title: "Name"}, {Key: "amount"}},
		Rows: []map[string]string{
			{"name": "Tuition", "amount": "500"},
			{"name": "Lab, science"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Name,amount\nTuition,500\n\"Lab, science\",\n", string(out))
}

func TestCSVExporterRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRenderAdmitCard(t *testing.T) {
	out, err := NewPDFExporter().RenderAdmitCard(AdmitCard{
		School:     "Green Valley",
		Exam:       "Midterm",
		Student:    "Rahim",
		RollNumber: "12",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewPDFExporter().RenderAdmitCard(AdmitCard{Exam: "Midterm"})
	assert.Error(t, err)
}
