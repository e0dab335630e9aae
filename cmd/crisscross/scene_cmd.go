package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crisscross/internal/config"
)

var sceneCmd = &cobra.Command{
	Use:   "scene [scenario]",
	Short: "Print the resolved scene as YAML",
	Long: `Print the scene a command would use, after flag overrides, as YAML.
The output is a valid --config file.

Examples:
  crisscross scene > my-scene.yaml
  crisscross scene ray-330 --angle 300`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, id, err := loadScene(cmd, args)
		if err != nil {
			return err
		}
		if id != customSceneID {
			scene.Name = id
		}
		data, err := config.MarshalScene(scene)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	addSceneFlags(sceneCmd)
	rootCmd.AddCommand(sceneCmd)
}
