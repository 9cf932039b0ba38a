package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer func() {
		require.NoError(t, f.Close())
	}()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestReadRows(t *testing.T) {
	source := [][]any{
		{"Nro Caso Assistravel", "Corresponsal ID", "Fecha de Inicio", "Pais"},
		{"AT-1001", "Global Assist", 44927, "Argentina"},
	}

	rows, err := ReadRows(buildWorkbook(t, source))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Nro Caso Assistravel", rows[0][0])
	require.Equal(t, "AT-1001", rows[1][0])
	// Raw cell values keep serial dates numeric.
	require.Equal(t, "44927", rows[1][2])
}

func TestReadRows_NotASpreadsheet(t *testing.T) {
	_, err := ReadRows(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)
}
