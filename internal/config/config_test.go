package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rmera/gomcnp/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Config", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "gomcnp-config-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("NewDefaultConfig", func() {
		It("returns a valid config", func() {
			cfg := config.NewDefaultConfig()
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.Surface.WrapWidth).To(Equal(80))
			Expect(cfg.Output.Format).To(Equal("mcnp"))
			Expect(cfg.Ptrac.Strict).To(BeFalse())
		})
	})

	Describe("ParseTOML", func() {
		It("overrides only the given keys", func() {
			cfg, err := config.ParseTOML([]byte("[ptrac]\nstrict = true\nbins = 20\n\n[output]\nformat = \"yaml\"\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Ptrac.Strict).To(BeTrue())
			Expect(cfg.Ptrac.Bins).To(Equal(20))
			Expect(cfg.Output.Format).To(Equal("yaml"))
			Expect(cfg.Ptrac.EnergyMax).To(Equal(20.0))
		})

		It("rejects unknown keys", func() {
			_, err := config.ParseTOML([]byte("[ptrac]\nstrictness = true\n"))
			Expect(err).To(MatchError(ContainSubstring("ptrac.strictness")))
		})

		It("rejects invalid values", func() {
			_, err := config.ParseTOML([]byte("[ptrac]\nenergy_min = 0.0\n"))
			Expect(err).To(HaveOccurred())
			_, err = config.ParseTOML([]byte("[output]\nformat = \"xml\"\n"))
			Expect(err).To(HaveOccurred())
		})

		It("rejects malformed TOML", func() {
			_, err := config.ParseTOML([]byte("[ptrac\n"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Save", func() {
		It("writes a file ParseTOML reads back", func() {
			cfg := config.NewDefaultConfig()
			cfg.Surface.WrapWidth = 72
			cfg.Log.JSON = true
			path := filepath.Join(tmpDir, "gomcnp.toml")
			Expect(config.Save(path, cfg)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			back, err := config.ParseTOML(data)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(cfg))
		})

		It("refuses a nil config", func() {
			Expect(config.Save(filepath.Join(tmpDir, "x.toml"), nil)).NotTo(Succeed())
		})
	})

	Describe("InitViper", func() {
		It("uses the defaults without a config file", func() {
			wd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tmpDir)).To(Succeed())
			defer os.Chdir(wd)

			v, err := config.InitViper("")
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Load(v)).To(Equal(config.NewDefaultConfig()))
		})

		It("reads the given file", func() {
			path := filepath.Join(tmpDir, "custom.toml")
			Expect(os.WriteFile(path, []byte("[surface]\nwrap_width = 60\n"), 0o644)).To(Succeed())

			v, err := config.InitViper(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(config.Load(v).Surface.WrapWidth).To(Equal(60))
		})

		It("fails when the given file is missing", func() {
			_, err := config.InitViper(filepath.Join(tmpDir, "missing.toml"))
			Expect(err).To(HaveOccurred())
		})

		It("lets environment variables override the file", func() {
			path := filepath.Join(tmpDir, "gomcnp.toml")
			Expect(os.WriteFile(path, []byte("[ptrac]\nstrict = false\nworkers = 2\n"), 0o644)).To(Succeed())
			os.Setenv("GOMCNP_PTRAC_STRICT", "true")
			defer os.Unsetenv("GOMCNP_PTRAC_STRICT")

			v, err := config.InitViper(path)
			Expect(err).NotTo(HaveOccurred())
			cfg := config.Load(v)
			Expect(cfg.Ptrac.Strict).To(BeTrue())
			Expect(cfg.Ptrac.Workers).To(Equal(2))
		})
	})
})
