package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/balkashynov/listo/internal/models"
	"github.com/balkashynov/listo/internal/parser"
	"github.com/balkashynov/listo/internal/store"
)

var brandingCmd = &cobra.Command{
	Use:   "branding",
	Short: "Show and manage app branding",
	Long: `Show the app name, tagline, logo and primary color.

The set/logo subcommands are the admin flow: they write the singleton
branding row straight to the backend and then refresh the cache.
Defaults apply until a remote override exists.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		b := appState.Branding()
		fmt.Printf("Name:    %s\n", b.Name)
		fmt.Printf("Tagline: %s\n", b.Tagline)
		fmt.Printf("Color:   %s\n", b.PrimaryColor)
		if b.LogoURL != "" {
			fmt.Printf("Logo:    %s\n", b.LogoURL)
		}
	}),
}

var brandingSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update branding fields",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		// Start from the current cache so unset flags keep their values
		record := appState.Branding()

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			record.Name = name
		}
		if tagline, _ := cmd.Flags().GetString("tagline"); tagline != "" {
			record.Tagline = tagline
		}
		if color, _ := cmd.Flags().GetString("color"); color != "" {
			normalized, err := parser.NormalizeHexColor(color)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			record.PrimaryColor = normalized
		}
		record.ID = models.BrandingID

		if err := appClient.UpsertRow(cmd.Context(), store.Branding, record); err != nil {
			fmt.Printf("Error saving branding: %v\n", err)
			return
		}

		appState.RefreshBranding(cmd.Context())
		fmt.Println("✅ Branding updated")
	}),
}

var brandingLogoCmd = &cobra.Command{
	Use:   "logo [image-path]",
	Short: "Upload a logo image",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", path, err)
			return
		}

		ext := filepath.Ext(path)
		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		filename := fmt.Sprintf("logo_%s%s", uuid.NewString(), ext)

		publicURL, err := appClient.UploadFile(cmd.Context(), appConfig.Bucket, filename, data, contentType)
		if err != nil {
			fmt.Printf("Error uploading logo: %v\n", err)
			return
		}

		record := appState.Branding()
		record.ID = models.BrandingID
		record.LogoURL = publicURL
		if err := appClient.UpsertRow(cmd.Context(), store.Branding, record); err != nil {
			fmt.Printf("Error saving branding: %v\n", err)
			return
		}

		appState.RefreshBranding(cmd.Context())
		fmt.Printf("✅ Logo uploaded: %s\n", publicURL)
	}),
}

func init() {
	brandingSetCmd.Flags().String("name", "", "App name")
	brandingSetCmd.Flags().String("tagline", "", "App tagline")
	brandingSetCmd.Flags().String("color", "", "Primary color (#RRGGBB)")

	brandingCmd.AddCommand(brandingSetCmd)
	brandingCmd.AddCommand(brandingLogoCmd)
}
