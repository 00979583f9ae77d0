package cli

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
	"github.com/spf13/pflag"
)

// stepFlags maps each step toggle to its command-line flag.
var stepFlags = []struct {
	name  string
	usage string
}{
	{"summarize", "Summarize the meeting"},
	{"actions", "Extract action items"},
	{"email", "Draft a follow-up email"},
	{"send", "Send the follow-up email"},
}

func addStepFlags(fs *pflag.FlagSet) {
	for _, f := range stepFlags {
		fs.Bool(f.name, false, f.usage+" (default from config)")
	}
}

// resolveFlags uses the toggles given on the command line and the config defaults for the rest.
func resolveFlags(fs *pflag.FlagSet, defaults config.StepsConfig) pipeline.Flags {
	pick := func(name string, def bool) bool {
		if fs == nil || !fs.Changed(name) {
			return def
		}
		v, err := fs.GetBool(name)
		if err != nil {
			return def
		}
		return v
	}
	return pipeline.Flags{
		Summarize: pick("summarize", defaults.Summarize),
		Actions:   pick("actions", defaults.Actions),
		Email:     pick("email", defaults.Email),
		Send:      pick("send", defaults.Send),
	}
}

func addSMTPFlags(fs *pflag.FlagSet) {
	fs.String("smtp-email", "", "Sender address (default from env)")
	fs.String("smtp-receiver", "", "Receiver address (default from env)")
	fs.String("smtp-password", "", "Sender password (default from env)")
}

// resolveCredentials prefers flags, then the environment variables named in the config.
func resolveCredentials(fs *pflag.FlagSet, cfg config.SMTPConfig, env config.Env) mailer.Credentials {
	pick := func(name, envKey string) string {
		if fs != nil {
			if v, err := fs.GetString(name); err == nil && v != "" {
				return v
			}
		}
		return env.Lookup(envKey)
	}
	return mailer.Credentials{
		Sender:   pick("smtp-email", cfg.SenderEnv),
		Receiver: pick("smtp-receiver", cfg.ReceiverEnv),
		Password: pick("smtp-password", cfg.PasswordEnv),
	}
}
