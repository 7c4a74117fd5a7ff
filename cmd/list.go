package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/color-collector/api/api"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/models"
)

var (
	listUser string
	listView string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list a user's collected colors",
	RunE:  listFn,
}

func init() {
	listCmd.Flags().StringVarP(&listUser, "user", "u", "", "email of the collector")
	listCmd.Flags().StringVarP(&listView, "view", "", "grid", "one of [grid, spectrum, timeline, map]")
	_ = listCmd.MarkFlagRequired("user")
}

func listFn(_ *cobra.Command, _ []string) error {
	cfg := api.ConfigFromEnv()
	if cfg.DatabaseType == "memory" {
		return errors.New("list needs a database, DB_TYPE=memory keeps nothing between runs")
	}

	view, err := models.ParseCollectionView(listView)
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	users, _ := datastore.NewUserDatabase(db)
	colors, _ := datastore.NewColorDatabase(db)

	user, err := users.GetUserByEmail(listUser)
	if err != nil {
		if datastore.IsNoRows(err) {
			return fmt.Errorf("no collector with email %s", listUser)
		}
		return err
	}

	records, err := listRecords(colors, user.UserID, view)
	if err != nil {
		return err
	}

	printRecords(os.Stdout, records, time.Now())
	return nil
}

func listRecords(repo datastore.ColorRepository, userID string, view models.CollectionView) ([]models.ColorRecord, error) {
	switch view {
	case models.ViewTimeline:
		return repo.ListByUser(userID, datastore.OrderTimeline)
	case models.ViewMap:
		return repo.ListLocated(userID)
	}

	records, err := repo.ListByUser(userID, datastore.OrderNewest)
	if err != nil {
		return nil, err
	}
	if view == models.ViewSpectrum {
		models.SortSpectrum(records)
	}
	return records, nil
}

func recordsToTableData(records []models.ColorRecord, now time.Time) [][]string {
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		proximity := ""
		if r.Proximity != nil {
			proximity = string(*r.Proximity)
		}
		place := ""
		if r.Location != nil {
			place = r.Location.PlaceName
			if place == "" {
				place = fmt.Sprintf("%.4f, %.4f", r.Location.Latitude, r.Location.Longitude)
			}
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			r.Hex,
			r.Name,
			r.OriginalCode,
			proximity,
			place,
			humanize.RelTime(r.DateAdded, now, "ago", "from now"),
		})
	}
	return rows
}

func printRecords(w io.Writer, records []models.ColorRecord, now time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Hex", "Name", "Code", "Proximity", "Place", "Added"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(recordsToTableData(records, now))
	table.Render()
}
