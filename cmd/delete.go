package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete images from the gallery",
	Long:  `Delete a single image or every image of a cluster. Files and rows are both removed.`,
}

var deleteImageCmd = &cobra.Command{
	Use:     "image <id>",
	Short:   "Delete one image and its row",
	Args:    cobra.ExactArgs(1),
	Example: `  pss-admin delete image 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid image id %q", args[0])
		}

		msg, err := newClient().DeleteImage(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error deleting image %d: %w", id, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var deleteClusterCmd = &cobra.Command{
	Use:     "cluster <classId>",
	Short:   "Delete every image of a cluster",
	Args:    cobra.ExactArgs(1),
	Example: `  pss-admin delete cluster 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid cluster id %q", args[0])
		}

		msg, err := newClient().DeleteCluster(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error deleting cluster %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteImageCmd)
	deleteCmd.AddCommand(deleteClusterCmd)
}
