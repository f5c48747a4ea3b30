// Package buildinfo holds the banner printed by the binaries.
package buildinfo

const (
	ProjectName = "colorparty"
	GithubURL   = "https://github.com/bloops-games/colorparty"
)

const Graffiti = `
              __                                 __
  _________  / /___  _________  ____ ______/ /___  __
 / ___/ __ \/ / __ \/ ___/ __ \/ __ ` + "`" + `/ ___/ __/ / / /
/ /__/ /_/ / / /_/ / /  / /_/ / /_/ / /  / /_/ /_/ /
\___/\____/_/\____/_/  / .___/\__,_/_/   \__/\__, /
                      /_/                   /____/
`

// GreetingCLI takes the project name, the version and the repository url.
const GreetingCLI = "%s %s\n%s\n\n"
