package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pss-admin/dto"
	"github.com/pss-admin/lib/gallery"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Variables to hold flag values
var (
	cameraFlag  string
	clusterFlag string
	pageFlag    int
	limitFlag   int
	periodFlag  string
	orderFlag   string
)

var camerasCmd = &cobra.Command{
	Use:   "cameras",
	Short: "List the cameras of the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		cameras, err := newClient().Cameras(cmd.Context(), projectID())
		if err != nil {
			return fmt.Errorf("error fetching cameras: %w", err)
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), dto.CameraListResponse{Cameras: cameras})
		}
		return printIDs(cmd.OutOrStdout(), "CAMERA", cameras)
	},
}

var clustersCmd = &cobra.Command{
	Use:     "clusters",
	Short:   "List the clusters seen by a camera",
	Example: `  pss-admin clusters --camera 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		clusters, err := newClient().Clusters(cmd.Context(), projectID(), cameraFlag)
		if err != nil {
			return fmt.Errorf("error fetching clusters: %w", err)
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), dto.ClusterListResponse{Clusters: clusters})
		}
		return printIDs(cmd.OutOrStdout(), "CLUSTER", clusters)
	},
}

var imagesCmd = &cobra.Command{
	Use:     "images",
	Short:   "List one page of a cluster's images",
	Example: `  pss-admin images --camera 2 --cluster 7 --period 1m --order oldest --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := limitFlag
		if limit < 1 {
			limit = viper.GetInt("page_size")
		}

		images, err := newClient().Images(cmd.Context(), projectID(), cameraFlag, clusterFlag, gallery.ImageQuery{
			Page:   pageFlag,
			Limit:  limit,
			Period: periodFlag,
			Order:  orderFlag,
		})
		if err != nil {
			return fmt.Errorf("error fetching images: %w", err)
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), dto.ImageListResponse{Images: images})
		}
		printImages(cmd.OutOrStdout(), images)
		if len(images) >= limit {
			fmt.Fprintf(cmd.OutOrStdout(), "\nMore images may follow: use --page %d\n", pageFlag+1)
		}
		return nil
	},
}

func printIDs(w io.Writer, header string, ids []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, id := range ids {
		fmt.Fprintln(tw, id)
	}
	return tw.Flush()
}

func printImages(w io.Writer, images []dto.ImageResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILENAME\tORIGINAL\tTIMESTAMP\tURL")
	fmt.Fprintln(tw, "--\t--------\t--------\t---------\t---")
	for _, img := range images {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			img.ID,
			img.Filename,
			img.OriginalFilename,
			img.Timestamp.Format(time.RFC3339),
			img.ObjectImage,
		)
	}
	tw.Flush()
}

func init() {
	rootCmd.AddCommand(camerasCmd)
	rootCmd.AddCommand(clustersCmd)
	rootCmd.AddCommand(imagesCmd)

	clustersCmd.Flags().StringVar(&cameraFlag, "camera", "", "Camera ID")
	clustersCmd.MarkFlagRequired("camera")

	imagesCmd.Flags().StringVar(&cameraFlag, "camera", "", "Camera ID")
	imagesCmd.Flags().StringVar(&clusterFlag, "cluster", "", "Cluster (class) ID")
	imagesCmd.Flags().IntVar(&pageFlag, "page", 1, "Page number")
	imagesCmd.Flags().IntVar(&limitFlag, "limit", 0, "Page size (default from config page_size)")
	imagesCmd.Flags().StringVar(&periodFlag, "period", "all", "Capture period: all, 1d, 1w, 1m, 6m, 1y")
	imagesCmd.Flags().StringVar(&orderFlag, "order", "newest", "Sort order: newest or oldest")
	imagesCmd.MarkFlagRequired("camera")
	imagesCmd.MarkFlagRequired("cluster")
}
