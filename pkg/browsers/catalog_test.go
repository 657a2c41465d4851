package browsers

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/browserd/browserd/pkg/models"
)

const data1 = `
chromium:
  enabled: true
  args:
    - --no-sandbox
  channel: chrome
firefox:
  enabled: true
webkit:
  enabled: false
`

func TestYamlEnginesCatalog_Lookup(t *testing.T) {
	g := NewWithT(t)

	cat, err := NewYamlEnginesCatalog([]byte(data1))
	g.Expect(err).ToNot(HaveOccurred())

	cfg, ok := cat.Lookup(models.EngineChromium)
	g.Expect(ok).To(BeTrue())
	g.Expect(cfg).To(Equal(models.EngineConfig{
		Enabled: true,
		Args:    []string{"--no-sandbox"},
		Channel: "chrome",
	}))

	_, ok = cat.Lookup(models.EngineWebkit)
	g.Expect(ok).To(BeFalse())
}

func TestYamlEnginesCatalog_Engines(t *testing.T) {
	g := NewWithT(t)

	cat, err := NewYamlEnginesCatalog([]byte(data1))
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(cat.Engines()).To(Equal([]models.Engine{models.EngineChromium, models.EngineFirefox}))
}

func TestYamlEnginesCatalog_UnknownEngine(t *testing.T) {
	g := NewWithT(t)

	_, err := NewYamlEnginesCatalog([]byte("opera:\n  enabled: true\n"))
	g.Expect(err).To(MatchError(MatchRegexp("unknown engine.*opera")))
}

func TestYamlEnginesCatalog_BadYaml(t *testing.T) {
	g := NewWithT(t)

	_, err := NewYamlEnginesCatalog([]byte("\tnot yaml"))
	g.Expect(err).To(HaveOccurred())
}

func TestDefaultCatalog(t *testing.T) {
	g := NewWithT(t)

	cat, err := NewYamlEnginesCatalog(DefaultCatalog())
	g.Expect(err).ToNot(HaveOccurred())

	cfg, ok := cat.Lookup(models.EngineChromium)
	g.Expect(ok).To(BeTrue())
	g.Expect(cfg.Args).To(ContainElement("--no-sandbox"))
	g.Expect(cat.Engines()).To(Equal([]models.Engine{models.EngineChromium}))
}
