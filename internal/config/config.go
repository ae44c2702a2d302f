package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Server struct {
		Addr                string   `yaml:"addr"`
		Pprof               bool     `yaml:"pprof"`
		ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds  int      `yaml:"idle_timeout_seconds"`
		AdminAllowCIDRs     []string `yaml:"admin_allow_cidrs"`
		// DataDir is the directory the HTTP analyze endpoint resolves
		// relative file parameters against.
		DataDir string `yaml:"data_dir"`
	} `yaml:"server"`
	Analysis struct {
		DepthPct  float64 `yaml:"depth_pct"`
		TargetQty float64 `yaml:"target_qty"`
	} `yaml:"analysis"`
	Generator struct {
		Output   string  `yaml:"output"`
		Levels   int     `yaml:"levels"`
		MidPrice float64 `yaml:"mid_price"`
		TickSize float64 `yaml:"tick_size"`
		MinSize  float64 `yaml:"min_size"`
		MaxSize  float64 `yaml:"max_size"`
	} `yaml:"generator"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Server.Addr = ":9090"
	c.Server.Pprof = false
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.Server.IdleTimeoutSeconds = 60
	c.Server.AdminAllowCIDRs = []string{"127.0.0.0/8", "::1/128"}
	c.Server.DataDir = "."
	c.Analysis.DepthPct = 0.5   // band of ±0.5% around mid price
	c.Analysis.TargetQty = 40.0 // execution size for VWAP sweeps
	c.Generator.Output = "orderbook.csv"
	c.Generator.Levels = 10
	c.Generator.MidPrice = 100.0
	c.Generator.TickSize = 0.10
	c.Generator.MinSize = 1.0
	c.Generator.MaxSize = 50.0
	return c
}

func Load() Config {
	c := defaultConfig()
	if path := os.Getenv("ANALYZER_CONFIG"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	if v := os.Getenv("ANALYZER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ANALYZER_LOG_PRETTY"); v == "1" || v == "true" {
		c.Logging.Pretty = true
	}
	if v := os.Getenv("ANALYZER_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ANALYZER_PPROF"); v == "1" || v == "true" {
		c.Server.Pprof = true
	}
	if v := os.Getenv("ANALYZER_ADMIN_ALLOW_CIDRS"); v != "" {
		c.Server.AdminAllowCIDRs = splitCSV(v)
	}
	if v := os.Getenv("ANALYZER_DATA_DIR"); v != "" {
		c.Server.DataDir = v
	}
	if v := os.Getenv("ANALYZER_DEPTH_PCT"); v != "" {
		var f float64
		_, _ = fmt.Sscan(v, &f)
		if f > 0 {
			c.Analysis.DepthPct = f
		}
	}
	if v := os.Getenv("ANALYZER_TARGET_QTY"); v != "" {
		var f float64
		_, _ = fmt.Sscan(v, &f)
		if f > 0 {
			c.Analysis.TargetQty = f
		}
	}
	if v := os.Getenv("ANALYZER_GEN_OUTPUT"); v != "" {
		c.Generator.Output = v
	}
	if v := os.Getenv("ANALYZER_GEN_LEVELS"); v != "" {
		var n int
		_, _ = fmt.Sscan(v, &n)
		if n > 0 {
			c.Generator.Levels = n
		}
	}
	if v := os.Getenv("ANALYZER_GEN_MID_PRICE"); v != "" {
		var f float64
		_, _ = fmt.Sscan(v, &f)
		if f > 0 {
			c.Generator.MidPrice = f
		}
	}
	return c
}

func splitCSV(s string) []string {
	var out []string
	buf := []rune{}
	for _, r := range s {
		if r == ',' {
			if len(buf) > 0 {
				out = append(out, string(buf))
				buf = buf[:0]
			}
			continue
		}
		buf = append(buf, r)
	}
	if len(buf) > 0 {
		out = append(out, string(buf))
	}
	return out
}
