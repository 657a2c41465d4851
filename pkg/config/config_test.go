package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestConfigViper(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String(listen, "", "")
	f.Int(maxPages, 0, "")
	err := f.Parse([]string{"--listen=:1234"})
	g.Expect(err).ToNot(HaveOccurred())

	genLineage = func() string {
		return "155"
	}

	v := viper.New()
	v.Set(apiToken, "sekret")
	v.Set(enginesURI, "engines.yaml")
	v.Set(installBrowsers, true)
	v.Set(headless, false)
	v.Set(requestTimeout, "45s")
	v.Set(blockResourceTypes, []string{"image, font", "media"})
	v.Set(allowedHosts, []string{"example.com,*.Example.ORG"})
	v.Set(maxPages, "7")

	c, err := NewConfig(v, f)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.Listen()).To(Equal(":1234"))
	g.Expect(c.Port()).To(Equal(DefaultPort))
	g.Expect(c.APIToken()).To(Equal("sekret"))
	g.Expect(c.Lineage()).To(Equal("155"))
	g.Expect(c.EnginesURI()).To(Equal("engines.yaml"))
	g.Expect(c.InstallBrowsers()).To(BeTrue())
	g.Expect(c.Headless()).To(BeFalse())
	g.Expect(c.RequestTimeout()).To(Equal(45 * time.Second))
	g.Expect(c.BlockedResourceTypes()).To(Equal([]string{"image", "font", "media"}))
	g.Expect(c.AllowedHosts()).To(Equal([]string{"example.com", "*.example.org"}))
	g.Expect(c.MaxPages()).To(Equal(7))
}

func TestConfigViper_Defaults(t *testing.T) {
	g := NewWithT(t)

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags, exit, err := ParseCmdLine(f, nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exit).To(BeFalse())

	c, err := NewConfig(viper.New(), flags)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.Listen()).To(BeEmpty())
	g.Expect(c.Port()).To(Equal(8000))
	g.Expect(c.APIToken()).To(BeEmpty())
	g.Expect(c.Headless()).To(BeTrue())
	g.Expect(c.RequestTimeout()).To(Equal(30 * time.Second))
	g.Expect(c.BlockedResourceTypes()).To(BeNil())
	g.Expect(c.AllowedHosts()).To(BeNil())
	g.Expect(c.MaxPages()).To(BeZero())
}

func TestConfigViper_EnvAliases(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("PORT", "9000")
	t.Setenv("API_TOKEN", "tok")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("REQUEST_TIMEOUT_MS", "15000")
	t.Setenv("BLOCK_RESOURCES", "true")
	t.Setenv("ALLOWED_HOSTS", "example.com, *.example.org")

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags, _, err := ParseCmdLine(f, nil)
	g.Expect(err).ToNot(HaveOccurred())

	c, err := NewConfig(viper.New(), flags)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.Port()).To(Equal(9000))
	g.Expect(c.APIToken()).To(Equal("tok"))
	g.Expect(c.Headless()).To(BeFalse())
	g.Expect(c.RequestTimeout()).To(Equal(15 * time.Second))
	g.Expect(c.BlockedResourceTypes()).To(Equal([]string{"image", "media", "font"}))
	g.Expect(c.AllowedHosts()).To(Equal([]string{"example.com", "*.example.org"}))
}

func TestConfigViper_BlockTypesImplyBlocking(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("BLOCK_RESOURCE_TYPES", "Script,stylesheet")

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags, _, err := ParseCmdLine(f, nil)
	g.Expect(err).ToNot(HaveOccurred())

	c, err := NewConfig(viper.New(), flags)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.BlockedResourceTypes()).To(Equal([]string{"script", "stylesheet"}))
}
