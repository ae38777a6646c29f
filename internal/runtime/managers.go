package runtime

import "context"

// yarn drives the yarn CLI. Vite project creation uses `yarn create vite`.
type yarn struct {
	runner *runner
}

func (y *yarn) Name() string { return ManagerYarn }

func (y *yarn) CreateVite(ctx context.Context, dir, name string) error {
	_, err := y.runner.run(ctx, dir, "yarn", "create", "vite", name, "--template", "vue")
	return err
}

func (y *yarn) Add(ctx context.Context, dir string, pkgs ...string) error {
	_, err := y.runner.run(ctx, dir, "yarn", append([]string{"add"}, pkgs...)...)
	return err
}

func (y *yarn) AddDev(ctx context.Context, dir string, pkgs ...string) error {
	_, err := y.runner.run(ctx, dir, "yarn", append([]string{"add", "-D"}, pkgs...)...)
	return err
}

func (y *yarn) InitManifest(ctx context.Context, dir string) error {
	_, err := y.runner.run(ctx, dir, "yarn", "init", "--yes")
	return err
}

func (y *yarn) Exec(ctx context.Context, dir string, args ...string) error {
	// yarn has no npx equivalent before Berry; npx ships with node either way.
	_, err := y.runner.run(ctx, dir, "npx", args...)
	return err
}

// npm drives the npm CLI.
type npm struct {
	runner *runner
}

func (n *npm) Name() string { return ManagerNPM }

func (n *npm) CreateVite(ctx context.Context, dir, name string) error {
	_, err := n.runner.run(ctx, dir, "npm", "create", "vite@latest", name, "--", "--template", "vue")
	return err
}

func (n *npm) Add(ctx context.Context, dir string, pkgs ...string) error {
	_, err := n.runner.run(ctx, dir, "npm", append([]string{"install"}, pkgs...)...)
	return err
}

func (n *npm) AddDev(ctx context.Context, dir string, pkgs ...string) error {
	_, err := n.runner.run(ctx, dir, "npm", append([]string{"install", "-D"}, pkgs...)...)
	return err
}

func (n *npm) InitManifest(ctx context.Context, dir string) error {
	_, err := n.runner.run(ctx, dir, "npm", "init", "--yes")
	return err
}

func (n *npm) Exec(ctx context.Context, dir string, args ...string) error {
	_, err := n.runner.run(ctx, dir, "npx", args...)
	return err
}
