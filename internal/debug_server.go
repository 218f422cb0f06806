package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"trashtalk/repositories"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key     string
	Type    string
	Version string
	Detail  string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// InspectHandler renders every badger key matching the "prefix" query parameter,
// under the dashboard returned by statsProvider.
func InspectHandler(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = BoardMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Prefix: r.URL.Query().Get("prefix"),
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			prefix := []byte(data.Prefix)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// StartDebugServer serves the inspector on port until the process exits.
func StartDebugServer(db *badger.DB, port int, endpoint string, statsProvider StatsProvider, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, InspectHandler(db, BoardMapper, statsProvider))

	go func() {
		address := fmt.Sprintf("0.0.0.0:%d", port)
		if err := http.ListenAndServe(address, mux); err != nil {
			log.Warn("Debug server stopped", "address", address, "error", err)
		}
	}()
}

// BoardMapper decodes the board and contract info keys, other keys are shown raw.
func BoardMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:     key,
		Type:    "RAW",
		Version: "-",
		Detail:  "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch key {
	case repositories.BoardKey:
		state, err := repositories.DecodeBoard(val)
		if err != nil {
			row.Detail = err.Error()
			return row
		}
		row.Type = "BOARD"
		if version, err := repositories.StateVersion(val); err == nil {
			row.Version = strconv.Itoa(version)
		}
		row.Detail = fmt.Sprintf("owner=%s count=%d messages=%d", state.Owner, state.Count, len(state.Messages))
	case repositories.ContractInfoKey:
		row.Type = "INFO"
		row.Detail = string(val)
	}
	return row
}
