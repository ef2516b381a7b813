// Command fitplot draws the charts comparing the First-Fit, Next-Fit, Best-Fit
// and Worst-Fit allocation strategies from simulation_data.txt in the working
// directory. It takes no arguments.
package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/DeltaTestSoftware/fitplot/chart"
	"github.com/DeltaTestSoftware/fitplot/table"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)

	if err := run(); err != nil {
		log.WithError(err).Error("fitplot failed")
		os.Exit(1)
	}
}

func run() error {
	layout, err := chart.DefaultLayout()
	if err != nil {
		return err
	}
	presenter, err := chart.NewPresenter(layout, ".")
	if err != nil {
		return err
	}
	return render(layout, presenter)
}

// render loads the layout's input table and presents its charts one after the
// other.
func render(layout chart.Layout, presenter chart.Presenter) error {
	tbl, err := table.Load(layout.Input)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"source":  layout.Input,
		"rows":    tbl.Rows(),
		"columns": tbl.Columns(),
	}).Info("table loaded")

	charts, err := chart.Build(tbl, layout)
	if err != nil {
		return err
	}
	for _, c := range charts {
		log.WithFields(log.Fields{"chart": c.Name, "backend": layout.Backend}).Info("presenting chart")
		if err := presenter.Present(c); err != nil {
			return errors.Wrap(err, "presentation failed")
		}
	}
	return nil
}
