package datagen_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milesconnect-ml/internal/config"
	"milesconnect-ml/internal/datagen"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteDriverCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, datagen.DriverCSV)

	records := datagen.NewDriverGenerator(config.Default().Drivers, 42).Generate(10)
	require.NoError(t, datagen.WriteDriverCSV(path, records))

	rows := readCSV(t, path)
	require.Len(t, rows, 11)
	assert.Equal(t, "driver_id", rows[0][0])
	assert.Equal(t, "driver_score", rows[0][len(rows[0])-1])
	assert.Equal(t, "DR-0001", rows[1][0])
}

func TestWriteVehicleCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, datagen.VehicleCSV)

	records := datagen.NewVehicleGenerator(config.Default().Vehicles, 42).Generate(8)
	require.NoError(t, datagen.WriteVehicleCSV(path, records))

	rows := readCSV(t, path)
	require.Len(t, rows, 9)
	assert.Equal(t, "vehicle_id", rows[0][0])
	assert.Equal(t, "risk_score", rows[0][len(rows[0])-1])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(rows[0]))
	}
}

func TestWriteDemandCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, datagen.DemandCSV)

	records := datagen.NewDemandGenerator(config.Default().Demand, 42).Generate(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 14)
	require.NoError(t, datagen.WriteDemandCSV(path, records))

	rows := readCSV(t, path)
	require.Len(t, rows, 15)
	assert.Equal(t, "date", rows[0][0])
	assert.Equal(t, "shipments", rows[0][len(rows[0])-1])
	assert.Equal(t, "2024-01-01", rows[1][0])
}
