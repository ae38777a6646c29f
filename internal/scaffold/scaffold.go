package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/doppio-labs/doppio/internal/hooks"
	"github.com/doppio-labs/doppio/internal/manifest"
	"github.com/doppio-labs/doppio/internal/runtime"
	"github.com/doppio-labs/doppio/internal/workspace"
)

// Data holds the template variables available to project templates.
type Data struct {
	App      string // host app name, e.g. "billing"
	Name     string // SPA name, e.g. "dashboard"
	Title    string // derived display title, e.g. "Dashboard"
	Tailwind bool   // whether Tailwind CSS is wired in
}

// NewData creates a Data with derived fields populated.
func NewData(app, name string, tailwind bool) *Data {
	return &Data{
		App:      app,
		Name:     name,
		Title:    cases.Title(language.English).String(name),
		Tailwind: tailwind,
	}
}

// Result holds the outcome of a generation run.
type Result struct {
	SPADir   string
	Files    []string
	Warnings []string
}

// Generator runs the SPA generation pipeline against a bench workspace.
// Steps run strictly in order; each depends on filesystem state produced
// by the previous one.
type Generator struct {
	Workspace *workspace.Workspace
	PM        runtime.PackageManager
	Logger    zerolog.Logger

	App      string
	Name     string
	Tailwind bool

	// Out receives user-facing progress messages; defaults to os.Stdout.
	Out io.Writer
}

func (g *Generator) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}

// Run executes the full pipeline and returns the generated file list.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if !g.Workspace.AppExists(g.App) {
		return nil, fmt.Errorf("app %q not found under %s", g.App, filepath.Join(g.Workspace.Root, workspace.AppsDir))
	}

	data := NewData(g.App, g.Name, g.Tailwind)
	result := &Result{SPADir: g.Workspace.SPADir(g.App, g.Name)}

	fmt.Fprintln(g.out(), "Generating spa...")

	steps := []struct {
		name string
		fn   func(context.Context, *Data, *Result) error
	}{
		{"create vite project", g.createViteProject},
		{"link controller files", g.linkControllerFiles},
		{"setup proxy options", g.setupProxyOptions},
		{"setup router", g.setupRouter},
		{"create vue files", g.createVueFiles},
		{"update package.json", g.updatePackageJSON},
		{"create www directory", g.createWWWDirectory},
		{"setup tailwindcss", g.setupTailwind},
		{"register routing rule", g.addRoutingRule},
	}

	for _, step := range steps {
		g.Logger.Debug().Str("step", step.name).Msg("running pipeline step")
		if err := step.fn(ctx, data, result); err != nil {
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return result, nil
}

// createViteProject scaffolds the Vite project and installs the frontend
// dependencies every generated SPA needs.
func (g *Generator) createViteProject(ctx context.Context, data *Data, result *Result) error {
	fmt.Fprintln(g.out(), "Scaffolding vue project...")
	if err := g.PM.CreateVite(ctx, g.Workspace.AppDir(g.App), g.Name); err != nil {
		return err
	}

	fmt.Fprintln(g.out(), "Installing dependencies...")
	return g.PM.Add(ctx, result.SPADir, "vue-router@^4", "socket.io-client@^2.4.0")
}

// linkControllerFiles overwrites the Vite-generated src/main.js with the
// app bootstrap that wires the router and backend controllers. A missing
// main.js means the scaffolding tool produced an unexpected layout; the
// step reports it and the rest of the pipeline still runs.
func (g *Generator) linkControllerFiles(_ context.Context, data *Data, result *Result) error {
	fmt.Fprintln(g.out(), "Linking controller files...")

	mainJS := filepath.Join(result.SPADir, "src", "main.js")
	if _, err := os.Stat(mainJS); err != nil {
		fmt.Fprintln(g.out(), "src/main.js not found!")
		result.Warnings = append(result.Warnings, "src/main.js not found; controller files were not linked")
		return nil
	}

	return g.renderTo(mainJS, "main.js.tmpl", data, result)
}

// setupProxyOptions writes proxyOptions.js and vite.config.js so the dev
// server forwards backend routes to the bench web server.
func (g *Generator) setupProxyOptions(_ context.Context, data *Data, result *Result) error {
	if err := g.renderTo(filepath.Join(result.SPADir, "proxyOptions.js"), "proxyOptions.js.tmpl", data, result); err != nil {
		return err
	}
	return g.renderTo(filepath.Join(result.SPADir, "vite.config.js"), "vite.config.js.tmpl", data, result)
}

// setupRouter creates src/router with the route table and auth routes.
func (g *Generator) setupRouter(_ context.Context, data *Data, result *Result) error {
	routerDir := filepath.Join(result.SPADir, "src", "router")
	if err := os.MkdirAll(routerDir, 0755); err != nil {
		return fmt.Errorf("creating router directory: %w", err)
	}

	if err := g.renderTo(filepath.Join(routerDir, "index.js"), "router-index.js.tmpl", data, result); err != nil {
		return err
	}
	return g.renderTo(filepath.Join(routerDir, "auth.js"), "auth.js.tmpl", data, result)
}

// createVueFiles writes App.vue and the Home/Login views.
func (g *Generator) createVueFiles(_ context.Context, _ *Data, result *Result) error {
	if err := g.copyVerbatim(filepath.Join(result.SPADir, "src", "App.vue"), "App.vue", result); err != nil {
		return err
	}

	viewsDir := filepath.Join(result.SPADir, "src", "views")
	if err := os.MkdirAll(viewsDir, 0755); err != nil {
		return fmt.Errorf("creating views directory: %w", err)
	}

	if err := g.copyVerbatim(filepath.Join(viewsDir, "Home.vue"), "Home.vue", result); err != nil {
		return err
	}
	return g.copyVerbatim(filepath.Join(viewsDir, "Login.vue"), "Login.vue", result)
}

// updatePackageJSON patches the SPA manifest with build scripts and, when
// the app-level manifest does not exist yet, initializes it with dev/build
// convenience scripts. A missing SPA manifest is reported and skipped.
func (g *Generator) updatePackageJSON(ctx context.Context, data *Data, result *Result) error {
	spaManifest := g.Workspace.SPAManifestPath(g.App, g.Name)
	if _, err := os.Stat(spaManifest); err != nil {
		fmt.Fprintln(g.out(), "package.json not found. Please manually update the build command.")
		result.Warnings = append(result.Warnings, "package.json not found; build scripts were not updated")
		return nil
	}

	pkg, err := manifest.Load(spaManifest)
	if err != nil {
		return err
	}

	pkg.SetScript("build", fmt.Sprintf(
		"vite build --base=/assets/%s/%s/ && yarn copy-html-entry", g.App, g.Name))
	pkg.SetScript("copy-html-entry", fmt.Sprintf(
		"cp ../%s/public/%s/index.html ../%s/www/%s.html", g.App, g.Name, g.App, g.Name))

	if res, err := pkg.Validate(); err == nil && !res.Valid {
		for _, issue := range res.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, "package.json: "+msg)
		}
	}

	if err := pkg.Save(); err != nil {
		return err
	}

	// The app-level manifest only gains scripts when it is created here.
	appManifest := g.Workspace.AppManifestPath(g.App)
	if _, err := os.Stat(appManifest); os.IsNotExist(err) {
		if err := g.PM.InitManifest(ctx, g.Workspace.AppDir(g.App)); err != nil {
			return err
		}

		appPkg, err := manifest.Load(appManifest)
		if err != nil {
			return err
		}
		appPkg.SetScript("dev", fmt.Sprintf("cd %s && yarn dev", g.Name))
		appPkg.SetScript("build", fmt.Sprintf("cd %s && yarn build", g.Name))
		if err := appPkg.Save(); err != nil {
			return err
		}
	}

	return nil
}

// createWWWDirectory ensures the app's www/ directory for HTML entry points.
func (g *Generator) createWWWDirectory(_ context.Context, _ *Data, _ *Result) error {
	wwwDir := g.Workspace.WWWPath(g.App)
	if err := os.MkdirAll(wwwDir, 0755); err != nil {
		return fmt.Errorf("creating www directory: %w", err)
	}
	return nil
}

// setupTailwind installs the Tailwind toolchain, generates its config, and
// writes the base stylesheet. Skipped unless requested.
func (g *Generator) setupTailwind(ctx context.Context, data *Data, result *Result) error {
	if !g.Tailwind {
		return nil
	}

	fmt.Fprintln(g.out(), "Setting up tailwindcss...")
	if err := g.PM.AddDev(ctx, result.SPADir,
		"tailwindcss@latest", "postcss@latest", "autoprefixer@latest"); err != nil {
		return err
	}
	if err := g.PM.Exec(ctx, result.SPADir, "tailwindcss", "init", "-p"); err != nil {
		return err
	}

	return g.renderTo(filepath.Join(result.SPADir, "src", "index.css"), "index.css.tmpl", data, result)
}

// addRoutingRule registers the SPA's website route in the app's hooks.py.
func (g *Generator) addRoutingRule(_ context.Context, _ *Data, _ *Result) error {
	rule := hooks.NewSPARule(g.Name)
	hooksPath := g.Workspace.HooksPath(g.App)

	g.Logger.Debug().
		Str("hooks", hooksPath).
		Str("from_route", rule.FromRoute).
		Str("to_route", rule.ToRoute).
		Msg("injecting routing rule")

	return hooks.UpdateFile(hooksPath, rule)
}

// renderTo renders an embedded template to path and records the file.
func (g *Generator) renderTo(path, tmplName string, data *Data, result *Result) error {
	raw, err := templateFS.ReadFile("templates/" + tmplName)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplName, err)
	}

	return g.writeFile(path, buf.Bytes(), result)
}

// copyVerbatim writes an embedded file to path without template processing.
func (g *Generator) copyVerbatim(path, name string, result *Result) error {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}
	return g.writeFile(path, raw, result)
}

func (g *Generator) writeFile(path string, content []byte, result *Result) error {
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	rel, err := filepath.Rel(result.SPADir, path)
	if err != nil {
		rel = path
	}
	result.Files = append(result.Files, rel)
	return nil
}
