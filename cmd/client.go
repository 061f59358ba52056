package cmd

import (
	"encoding/json"
	"io"

	"github.com/pss-admin/lib/gallery"
	"github.com/spf13/viper"
)

func newClient() *gallery.Client {
	return gallery.New(gallery.ClientConfig{
		BaseURL: viper.GetString("base_url"),
		Token:   viper.GetString("token"),
	})
}

func projectID() int64 {
	return viper.GetInt64("project_id")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
