// Package export writes likelihood sweeps to JSON and CSV for use
// outside the terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/copula/internal/loglik"
)

type ProfileData struct {
	N       int       `json:"n"`
	Grid    []float64 `json:"rho"`
	LogLik  []float64 `json:"log_likelihood"`
	BestRho float64   `json:"best_rho"`
	BestLL  float64   `json:"best_log_likelihood"`
}

// ProfileJSON writes a correlation sweep as indented JSON.
func ProfileJSON(path string, sampleLen int, rhos, lls []float64) error {
	if len(rhos) != len(lls) {
		return fmt.Errorf("export: %d grid points but %d log-likelihoods", len(rhos), len(lls))
	}

	best, bestLL := loglik.ArgMax(rhos, lls)
	data := ProfileData{
		N:       sampleLen,
		Grid:    rhos,
		LogLik:  lls,
		BestRho: best,
		BestLL:  bestLL,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ProfileCSV writes a correlation sweep as a two-column CSV with a
// header row.
func ProfileCSV(path string, rhos, lls []float64) error {
	if len(rhos) != len(lls) {
		return fmt.Errorf("export: %d grid points but %d log-likelihoods", len(rhos), len(lls))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"rho", "log_likelihood"}); err != nil {
		return err
	}
	for i := range rhos {
		row := []string{
			strconv.FormatFloat(rhos[i], 'g', -1, 64),
			strconv.FormatFloat(lls[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
