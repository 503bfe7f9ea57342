// Package whitelist shells out to the game-server console to add approved
// nicknames to the server whitelist.
package whitelist

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	vo "minegate/internal/domain/application/valueobjects"
	"minegate/internal/shared/config"
	"minegate/internal/shared/logger"
)

// nicknamePattern matches the characters Minecraft accounts may contain.
// Bedrock gamertags allow spaces.
var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_ ]{1,32}$`)

// ConsoleRunner issues whitelist-add commands to a live server console held
// in a detached screen session. Success is decided by the exit status of the
// screen invocation.
type ConsoleRunner struct {
	cfg config.WhitelistConfig
	log logger.Interface
}

func NewConsoleRunner(cfg config.WhitelistConfig, log logger.Interface) *ConsoleRunner {
	return &ConsoleRunner{cfg: cfg, log: log}
}

// Add issues one whitelist-add command for the nickname on the given
// edition. The platform decides the console command form: the vanilla
// whitelist for Java, the floodgate whitelist for Bedrock.
func (r *ConsoleRunner) Add(ctx context.Context, nickname string, platform vo.Platform) error {
	if !nicknamePattern.MatchString(nickname) {
		return fmt.Errorf("invalid nickname: %q", nickname)
	}

	var base string
	switch platform {
	case vo.PlatformJava:
		base = r.cfg.JavaCommand
	case vo.PlatformBedrock:
		base = r.cfg.BedrockCommand
	default:
		return fmt.Errorf("platform %s has no single console command", platform)
	}

	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stuffed := fmt.Sprintf("%s %s\n", base, nickname)
	cmd := exec.CommandContext(runCtx, "screen", "-DD", "-RR", r.cfg.ScreenSession, "-X", "stuff", stuffed)

	output, err := cmd.CombinedOutput()
	if err != nil {
		r.log.Errorw("whitelist command failed",
			"platform", platform.String(),
			"nickname", nickname,
			"output", string(output),
			"error", err,
		)
		return fmt.Errorf("whitelist command failed for %s: %w", platform, err)
	}

	r.log.Infow("whitelist command issued",
		"platform", platform.String(),
		"nickname", nickname,
	)
	return nil
}
