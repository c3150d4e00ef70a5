package main

import (
	"github.com/spf13/cobra"

	"coursework/internal/videos"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List the demo videos and their comments",
	RunE: func(cmd *cobra.Command, args []string) error {
		videos.WriteListing(cmd.OutOrStdout(), videos.Catalog())
		return nil
	},
}
