package gomcnpcmder_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomcnpcmder "github.com/rmera/gomcnp/cmd/gomcnp"
)

func TestGomcnp(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "gomcnp Command Suite")
}

const deck = `test deck
1 1 -1.0 -1 imp:n=1
2 0 1 imp:n=0

1 so 5.0 $ sphere
*2 px 3.0

mode n
nps 100
`

func ptracText() string {
	lines := []string{"-1", fmt.Sprintf("%-4s%5s%32s%9s%9s", "mcnp", "6", "05/08/23", "10/19/26", "12:00:00"), "cli test feed01", fmt.Sprintf(" %12.4E", 0.0)}
	counts := " "
	for _, n := range []int{2, 2, 4, 2, 4, 2, 4, 2, 4, 2, 4} {
		counts += fmt.Sprintf("%5d", n)
	}
	ids := " "
	for _, n := range []int{1, 2, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26, 7, 16, 20, 21, 22, 26} {
		ids += fmt.Sprintf("%4d", n)
	}
	lines = append(lines, counts, ids[:1+30*4], " "+ids[1+30*4:])
	event := func(next, ipt int, x, erg float64) []string {
		return []string{fmt.Sprintf(" %10d%10d", next, ipt), fmt.Sprintf(" %13.5E%13.5E%13.5E%13.5E", x, 0.0, 0.0, erg)}
	}
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 1, 1000.0))
	lines = append(lines, event(4000, 1, 0, 1.5)...)
	lines = append(lines, event(5000, 1, 1, 0.5)...)
	lines = append(lines, event(9000, 1, 2, 0.2)...)
	lines = append(lines, fmt.Sprintf(" %10d%13.5E", 2, 1000.0))
	lines = append(lines, event(5000, 2, 0, 3)...)
	lines = append(lines, event(9000, 2, 5, 2.5)...)
	return strings.Join(lines, "\n") + "\n"
}

// run executes a fresh gomcnp command with args and returns its output.
func run(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := gomcnpcmder.NewGomcnpCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("gomcnp", func() {
	var (
		tmpDir  string
		origDir string
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "gomcnp-cmd-*")
		Expect(err).NotTo(HaveOccurred())
		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tmpDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		os.RemoveAll(tmpDir)
	})

	It("registers the subcommands", func() {
		cmd := gomcnpcmder.NewGomcnpCmd()
		names := []string{}
		for _, c := range cmd.Commands() {
			names = append(names, c.Name())
		}
		Expect(names).To(ContainElements("surface", "deck", "ptrac", "config"))
		Expect(cmd.PersistentFlags().Lookup("strict")).NotTo(BeNil())
	})

	Describe("surface", func() {
		It("rewrites cards given as arguments", func() {
			out, err := run("surface", "1 PX 3.0", "*2 so 10 $ outer")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("1 px 3"))
			Expect(out).To(ContainSubstring("*2 so 10 $ outer"))
		})

		It("needs either cards or a file", func() {
			_, err := run("surface")
			Expect(err).To(HaveOccurred())
		})

		It("reports invalid cards", func() {
			_, err := run("surface", "1 px")
			Expect(err).To(HaveOccurred())
		})

		It("converts between MCNP, JSON and YAML", func() {
			out, err := run("surface", "1 px 3", "*2 so 10", "--format", "yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("A: px"))
			Expect(os.WriteFile("s.yaml", []byte(out), 0o644)).To(Succeed())

			out, err = run("surface", "-f", "s.yaml", "--input", "yaml", "--format", "json")
			Expect(err).NotTo(HaveOccurred())
			var parsed []map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			Expect(parsed).To(HaveLen(2))
			Expect(parsed[1]["A"]).To(Equal("so"))
			Expect(parsed[1]["*"]).To(BeTrue())
		})

		It("prints quadric forms", func() {
			out, err := run("surface", "1 px 3", "2 so 10", "3 rpp 0 1 0 1 0 1", "--quadric")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("(plane)"))
			Expect(out).To(ContainSubstring("(sphere)"))
			Expect(out).To(ContainSubstring("not a quadric"))
		})
	})

	Describe("deck", func() {
		It("rewrites an input file", func() {
			Expect(os.WriteFile("model.inp", []byte(deck), 0o644)).To(Succeed())
			out, err := run("deck", "model.inp")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("test deck\n"))
			Expect(out).To(ContainSubstring("*2 px 3"))
			Expect(out).To(ContainSubstring("nps 100"))
		})

		It("writes a deck as JSON", func() {
			Expect(os.WriteFile("model.inp", []byte(deck), 0o644)).To(Succeed())
			out, err := run("deck", "model.inp", "--format", "json")
			Expect(err).NotTo(HaveOccurred())
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			Expect(parsed["title"]).To(Equal("test deck"))
			Expect(parsed["surfaces"]).To(HaveLen(2))
		})

		It("fails on a missing file", func() {
			_, err := run("deck", "missing.inp")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ptrac", func() {
		BeforeEach(func() {
			Expect(os.WriteFile("ptrac.txt", []byte(ptracText()), 0o644)).To(Succeed())
		})

		It("decodes a file", func() {
			out, err := run("ptrac", "decode", "ptrac.txt", "--strict", "-w", "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("cli test feed01"))
			Expect(strings.Count(out, "Event for particle")).To(Equal(2))
		})

		It("decodes a file to JSON", func() {
			out, err := run("ptrac", "decode", "ptrac.txt", "--format", "json")
			Expect(err).NotTo(HaveOccurred())
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			Expect(parsed["histories"]).To(HaveLen(2))
		})

		It("exports, lists and deletes runs", func() {
			db := filepath.Join(tmpDir, "runs.sqlite")
			out, err := run("ptrac", "export", "ptrac.txt", "--db", db)
			Expect(err).NotTo(HaveOccurred())
			id, err := uuid.Parse(strings.TrimSpace(out))
			Expect(err).NotTo(HaveOccurred())

			out, err = run("ptrac", "runs", "--db", db)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(id.String()))
			Expect(out).To(ContainSubstring("cli test feed01"))

			_, err = run("ptrac", "runs", "--db", db, "--delete", id.String())
			Expect(err).NotTo(HaveOccurred())
			out, err = run("ptrac", "runs", "--db", db)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeEmpty())

			_, err = run("ptrac", "runs", "--db", db, "--delete", "not-a-uuid")
			Expect(err).To(HaveOccurred())
		})

		It("builds a spectrum", func() {
			out, err := run("ptrac", "spectrum", "ptrac.txt", "--category", "source")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HavePrefix("ID: 1, Normalized: false, TotalData: 2"))

			out, err = run("ptrac", "spectrum", "ptrac.txt", "--category", "source", "--bins", "4", "--emin", "0.1", "--emax", "10", "--format", "json")
			Expect(err).NotTo(HaveOccurred())
			var parsed map[string]any
			Expect(json.Unmarshal([]byte(out), &parsed)).To(Succeed())
			Expect(parsed["histo"]).To(HaveLen(4))
			Expect(parsed["total"]).To(BeNumerically("==", 2))
		})

		It("plots a spectrum", func() {
			_, err := run("ptrac", "spectrum", "ptrac.txt", "--category", "termination", "--png", "term.png")
			Expect(err).NotTo(HaveOccurred())
			info, err := os.Stat("term.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		})

		It("rejects unknown categories", func() {
			_, err := run("ptrac", "spectrum", "ptrac.txt", "--category", "fission")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("config", func() {
		It("writes and shows the configuration", func() {
			out, err := run("config", "init")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("gomcnp.toml"))
			_, err = run("config", "init")
			Expect(err).To(HaveOccurred())

			Expect(os.WriteFile("gomcnp.toml", []byte("[surface]\nwrap_width = 40\n"), 0o644)).To(Succeed())
			out, err = run("config", "show", "--strict")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("wrap_width = 40"))
			Expect(out).To(ContainSubstring("strict = true"))
		})

		It("fails on an invalid config file", func() {
			Expect(os.WriteFile("bad.toml", []byte("[output]\nformat = \"xml\"\n"), 0o644)).To(Succeed())
			_, err := run("config", "show", "--config", "bad.toml")
			Expect(err).To(HaveOccurred())
		})
	})
})
