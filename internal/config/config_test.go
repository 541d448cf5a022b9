package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/translit-qa/translit-e2e/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("should load minimal config with defaults filled in", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.App.BaseURL).To(Equal("http://localhost:8080"))
			Expect(cfg.App.InputSelector).To(Equal("input"))
			Expect(cfg.Timing.AccuracySettleMs).To(Equal(3000))
			Expect(cfg.Results.File).To(Equal("results.csv"))
		})

		It("should load full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Input.Directories).To(HaveLen(2))
			Expect(*cfg.Input.Recursive).To(BeFalse())
			Expect(cfg.App.OutputSelector).To(Equal(".translit-output"))
			Expect(cfg.App.ClearButtonTexts).To(ContainElement("reset"))
			Expect(cfg.Timing.PollStableOutput).To(BeTrue())
			Expect(cfg.Conventions.ClearExceptionID).To(Equal("Pos_UI_0005"))
			Expect(cfg.Run.Concurrency).To(Equal(8))
			Expect(*cfg.Run.Headless).To(BeFalse())
		})

		It("should return error for nonexistent file", func() {
			_, err := config.Load("nonexistent.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid YAML", func() {
			tmpFile := filepath.Join(GinkgoT().TempDir(), "invalid.yaml")
			Expect(os.WriteFile(tmpFile, []byte("{{invalid yaml}}"), 0644)).To(Succeed())

			_, err := config.Load(tmpFile)
			Expect(err).To(HaveOccurred())
		})

		It("should let TRANSLIT_BASE_URL override the file value", func() {
			GinkgoT().Setenv("TRANSLIT_BASE_URL", "http://staging.example.org")
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.App.BaseURL).To(Equal("http://staging.example.org"))
		})
	})

	Describe("DefaultConfig", func() {
		It("should return config with the suite's historical timings", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Timing.AccuracySettleMs).To(Equal(3000))
			Expect(cfg.Timing.RealTimeSettleMs).To(Equal(2000))
			Expect(cfg.Timing.ClearSettleMs).To(Equal(1000))
			Expect(cfg.Timing.TypeDelayMs).To(Equal(100))
			Expect(cfg.Timing.PollStableOutput).To(BeFalse())
			Expect(cfg.App.ClearButtonTexts).To(Equal([]string{"clear", "x"}))
			Expect(cfg.Run.Concurrency).To(Equal(4))
		})

		It("should expose durations in the expected units", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Timing.AccuracySettle()).To(Equal(3 * time.Second))
			Expect(cfg.Timing.TypeDelay()).To(Equal(100 * time.Millisecond))
			Expect(cfg.Timing.NavigationTimeout()).To(Equal(30 * time.Second))
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = config.DefaultConfig()
		})

		It("should accept the defaults", func() {
			Expect(config.Validate(cfg)).To(Succeed())
		})

		It("should reject an empty base URL", func() {
			cfg.App.BaseURL = ""
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject a relative base URL", func() {
			cfg.App.BaseURL = "localhost:3000"
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject negative settle delays", func() {
			cfg.Timing.AccuracySettleMs = -1
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject polling without a poll interval", func() {
			cfg.Timing.PollStableOutput = true
			cfg.Timing.StablePollMs = 0
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject zero concurrency", func() {
			cfg.Run.Concurrency = 0
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should reject an unknown logging level", func() {
			cfg.Logging.Level = "trace"
			Expect(config.Validate(cfg)).ToNot(Succeed())
		})

		It("should collect multiple problems into one error", func() {
			cfg.App.BaseURL = ""
			cfg.Results.File = ""
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("app.base_url"))
			Expect(err.Error()).To(ContainSubstring("results.file"))
		})
	})
})
