package cmd

import (
	"io"
	"time"

	"github.com/renato0307/pickcheck/internal/adapters/github"
	"github.com/renato0307/pickcheck/internal/config"
)

// APIFlags configures how GitHub is reached
type APIFlags struct {
	APIURL  string `name:"api-url" help:"GitHub API base URL (GitHub Enterprise)" default:"https://api.github.com" env:"PICKCHECK_API_URL"`
	MaxWait int    `help:"Longest rate limit wait in seconds before giving up" default:"120"`
	NoWait  bool   `help:"Fail immediately when the rate limit is exhausted"`
}

func (f *APIFlags) applySettings(s *config.Settings) {
	if s == nil {
		return
	}
	if f.APIURL == github.DefaultBaseURL && !hasEnv("PICKCHECK_API_URL") && s.APIURL != "" {
		f.APIURL = s.APIURL
	}
	if f.MaxWait == config.DefaultMaxWaitSeconds && s.MaxWaitSeconds != nil {
		f.MaxWait = *s.MaxWaitSeconds
	}
	if !f.NoWait && s.AutoWait != nil && !*s.AutoWait {
		f.NoWait = true
	}
}

func (f *APIFlags) clientConfig(notices io.Writer) ClientConfig {
	return ClientConfig{
		APIURL:   f.APIURL,
		AutoWait: !f.NoWait,
		MaxWait:  time.Duration(f.MaxWait) * time.Second,
		Notices:  notices,
	}
}

// TargetFlags selects the repository, the source branch and how release branches are detected
type TargetFlags struct {
	AllBranches bool   `help:"Include all release branches (including patch versions like 2.4.1)"`
	Branch      string `help:"Source branch to check PRs from" short:"b" default:"master" env:"PICKCHECK_BRANCH"`
	Limit       int    `help:"Check at most this many auto-detected branches (0 = all)" default:"0"`
	Repo        string `help:"GitHub repository in format 'owner/repo'" short:"r" default:"milvus-io/milvus" env:"PICKCHECK_REPO"`
}

func (f *TargetFlags) applySettings(s *config.Settings) error {
	if s != nil {
		if f.Repo == config.DefaultRepo && !hasEnv("PICKCHECK_REPO") && s.Repo != "" {
			f.Repo = s.Repo
		}
		if f.Branch == config.DefaultBranch && !hasEnv("PICKCHECK_BRANCH") && s.Branch != "" {
			f.Branch = s.Branch
		}
		if !f.AllBranches && s.AllBranches != nil && *s.AllBranches {
			f.AllBranches = true
		}
		if f.Limit == 0 && s.BranchLimit != nil {
			f.Limit = *s.BranchLimit
		}
	}

	return config.ValidateRepo(f.Repo)
}
