package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>mascui</title>
    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch("bundle.wasm"), go.importObject).then((result) => {
            go.run(result.instance);
        });
    </script>
</head>
<body></body>
</html>
`

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Build the app into a static site",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	cmd.Flags().StringP("out", "o", "dist", "Output directory")
	cmd.Flags().String("dir", ".", "App directory")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	appDir := cfg.appDir(args)
	if err := checkMainPackage(appDir); err != nil {
		return err
	}
	fmt.Printf("Building WASM bundle in %s...\n", appDir)
	buildDir, err := buildWASM(appDir, false)
	if err != nil {
		return fmt.Errorf("error building WASM: %w", err)
	}
	defer os.RemoveAll(buildDir)
	if err := writeSite(buildDir, cfg.Out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfg.Out)
	return nil
}

// checkMainPackage fails unless appDir holds a main package.
func checkMainPackage(appDir string) error {
	info, err := os.Stat(appDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid app directory: %s", appDir)
	}
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName,
		Dir:  appDir,
		Env:  buildEnv(appDir, "GOOS=js", "GOARCH=wasm"),
	}, ".")
	if err != nil {
		return fmt.Errorf("load package in %s: %w", appDir, err)
	}
	if len(pkgs) == 0 || pkgs[0].Name != "main" {
		return fmt.Errorf("directory %s is not package main", appDir)
	}
	return nil
}

// buildWASM compiles the app in appDir to a temporary directory holding
// bundle.wasm and wasm_exec.js. Dev builds add the "dev" build tag.
func buildWASM(appDir string, dev bool) (string, error) {
	buildDir, err := os.MkdirTemp("", "mascui-build-*")
	if err != nil {
		return "", err
	}
	goArgs := []string{"build", "-o", filepath.Join(buildDir, "bundle.wasm")}
	if dev {
		goArgs = append(goArgs, "-tags", "dev")
	}
	cmd := exec.Command("go", goArgs...)
	cmd.Env = buildEnv(appDir, "GOOS=js", "GOARCH=wasm")

	absPath, err := filepath.Abs(appDir)
	if err != nil {
		os.RemoveAll(buildDir)
		return "", fmt.Errorf("failed to resolve app dir: %w", err)
	}
	cmd.Dir = absPath
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.RemoveAll(buildDir)
		return "", err
	}
	if err := copyFile(wasmExecPath(), filepath.Join(buildDir, "wasm_exec.js")); err != nil {
		os.RemoveAll(buildDir)
		return "", err
	}
	return buildDir, nil
}

func wasmExecPath() string {
	lib := filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js")
	if _, err := os.Stat(lib); err == nil {
		return lib
	}
	// Go releases before 1.24 kept it under misc.
	return filepath.Join(runtime.GOROOT(), "misc", "wasm", "wasm_exec.js")
}

// writeSite copies the build output to outDir next to an index.html.
func writeSite(buildDir, outDir string) error {
	for _, name := range []string{"bundle.wasm", "wasm_exec.js"} {
		if err := copyFile(filepath.Join(buildDir, name), filepath.Join(outDir, name)); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte(indexHTML), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	return nil
}

// copyFile copies src to dst, creating parent directories.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
