package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pss-admin/browser"
	"github.com/pss-admin/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const browseHelp = `Commands:
  camera <id>      select a camera (clears cluster and images)
  cluster <id>     select a cluster (back to page 1)
  period <p>       all, 1d, 1w, 1m, 6m, 1y
  order <o>        newest or oldest
  next | prev      change page
  open <id>        show an image next to its source frame
  close            close the detail view
  rm <id>          delete one image
  rmcluster        delete every image of the selected cluster
  refresh          reload the current page
  help             show this help
  quit             leave`

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse cameras, clusters and images",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(logging.LogConfig{Level: "error", Format: "text", Output: "stderr"})
		if err != nil {
			return err
		}
		defer log.Sync()

		session := browser.NewSession(newClient(), projectID(), viper.GetInt("page_size"), log)
		return runBrowse(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runBrowse(ctx context.Context, s *browser.Session, in io.Reader, out io.Writer) error {
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("error fetching cameras: %w", err)
	}
	renderSession(out, s)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		var err error
		switch fields[0] {
		case "camera":
			err = s.SelectCamera(ctx, arg)
		case "cluster":
			err = s.SelectCluster(ctx, arg)
		case "period":
			err = s.SetPeriod(ctx, arg)
		case "order":
			err = s.SetOrder(ctx, arg)
		case "next":
			err = s.NextPage(ctx)
		case "prev":
			err = s.PrevPage(ctx)
		case "refresh":
			err = s.Refresh(ctx)
		case "open":
			id, perr := strconv.ParseInt(arg, 10, 64)
			if perr != nil || !s.OpenModal(id) {
				fmt.Fprintf(out, "No image %q on this page\n", arg)
				continue
			}
		case "close":
			s.CloseModal()
		case "rm":
			id, perr := strconv.ParseInt(arg, 10, 64)
			if perr != nil {
				fmt.Fprintf(out, "Invalid image id %q\n", arg)
				continue
			}
			var msg string
			if msg, err = s.DeleteImage(ctx, id); err == nil {
				fmt.Fprintln(out, msg)
			}
		case "rmcluster":
			var msg string
			if msg, err = s.DeleteCluster(ctx); err == nil {
				fmt.Fprintln(out, msg)
			}
		case "help":
			fmt.Fprintln(out, browseHelp)
			continue
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "Unknown command %q, type help\n", fields[0])
			continue
		}

		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		renderSession(out, s)
	}
}

func renderSession(out io.Writer, s *browser.Session) {
	camera, cluster := s.Camera, s.Cluster
	if camera == "" {
		camera = "-"
	}
	if cluster == "" {
		cluster = "-"
	}

	fmt.Fprintf(out, "Project %d  camera %s  cluster %s  period %s  order %s  page %d\n",
		s.ProjectID, camera, cluster, s.Period, s.Order, s.Page)
	fmt.Fprintf(out, "Cameras:  %s\n", strings.Join(s.Cameras, ", "))
	if s.Camera != "" {
		fmt.Fprintf(out, "Clusters: %s\n", strings.Join(s.Clusters, ", "))
	}

	if s.Modal != nil {
		tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "\tOBJECT\tORIGINAL")
		fmt.Fprintf(tw, "file\t%s\t%s\n", s.Modal.Filename, s.Modal.OriginalFilename)
		fmt.Fprintf(tw, "url\t%s\t%s\n", s.Modal.ObjectImage, s.Modal.OriginalImage)
		tw.Flush()
		return
	}

	switch {
	case s.Camera == "" || s.Cluster == "":
		return
	case len(s.Images) == 0:
		fmt.Fprintln(out, "No images.")
	default:
		printImages(out, s.Images)
	}

	var nav []string
	if s.HasPrev() {
		nav = append(nav, "prev")
	}
	if s.HasNext() {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		fmt.Fprintf(out, "[%s]\n", strings.Join(nav, "] ["))
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
