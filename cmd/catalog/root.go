package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"destiny-global-backend/config"
	"destiny-global-backend/internal/catalog"
	"destiny-global-backend/internal/site"
	"destiny-global-backend/pkg/logger"

	"github.com/spf13/cobra"
)

// cli carries what every subcommand shares
type cli struct {
	cfg        *config.Config
	catalog    *catalog.Catalog
	apiURL     string
	accessible bool
	interval   time.Duration
	out        *syncWriter
	in         *bufio.Reader
}

// syncWriter serializes writes from the gallery goroutine and the command
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func newRootCmd() *cobra.Command {
	c := &cli{catalog: catalog.Default()}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Browse the Destiny Global product catalog and send enquiries",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			c.cfg = cfg
			if c.apiURL == "" {
				c.apiURL = cfg.APIBaseURL
			}
			c.out = &syncWriter{w: cmd.OutOrStdout()}
			c.in = bufio.NewReader(cmd.InOrStdin())
			logger.InitWithWriter(os.Stderr, cfg.Env)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.apiURL, "api", "", "enquiry API base URL (default $API_BASE_URL)")
	root.PersistentFlags().BoolVar(&c.accessible, "accessible", false, "plain line-based prompts instead of the interactive UI")
	root.PersistentFlags().DurationVar(&c.interval, "interval", site.DefaultAutoAdvance, "lightbox auto-advance interval, 0 disables it")

	root.AddCommand(
		newBrowseCmd(c),
		newListCmd(c),
		newSearchCmd(c),
		newShowCmd(c),
		newGalleryCmd(c),
		newEnquireCmd(c),
		newAssetsCmd(c),
		newHealthCmd(c),
	)
	return root
}

func (c *cli) client() *site.Client {
	return site.NewClient(c.apiURL, &http.Client{Timeout: 30 * time.Second})
}

// newApp builds the headless site with output hooks bound to the terminal
func (c *cli) newApp() *site.App {
	interval := c.interval
	if interval == 0 {
		interval = -1
	}
	return site.NewApp(c.catalog, c.client(), site.Options{
		AutoAdvance: interval,
		OnGalleryChange: func(s site.GalleryState) {
			if s.Open {
				printGallery(c.out, s)
			}
		},
		OnFormChange: func(_ site.FormKind, s site.FormState) {
			printFormState(c.out, s)
		},
	})
}

func newHealthCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the enquiry API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.client().Health(cmd.Context())
			if err != nil {
				failure.Fprintln(c.out, site.MsgUnreachable)
				return err
			}
			success.Fprintf(c.out, "%s is %s", status.Service, status.Status)
			fmt.Fprintf(c.out, " (%s)\n", status.Timestamp)
			return nil
		},
	}
}
