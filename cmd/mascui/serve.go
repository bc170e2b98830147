package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Build and serve the app locally, rebuilding on change",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runServe,
	}
	cmd.Flags().IntP("port", "p", 8000, "Port to serve on")
	cmd.Flags().String("dir", ".", "App directory")
	cmd.Flags().Bool("open", true, "Open the app in a browser")
	return cmd
}

// devServer serves the most recent build of an app.
type devServer struct {
	mu       sync.RWMutex
	buildDir string
}

// swap makes dir the current build and returns the previous one.
func (s *devServer) swap(dir string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.buildDir
	s.buildDir = dir
	return old
}

func (s *devServer) current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buildDir
}

func (s *devServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bundle.wasm", s.serveBuildFile("bundle.wasm"))
	mux.HandleFunc("/wasm_exec.js", s.serveBuildFile("wasm_exec.js"))
	mux.HandleFunc("/", indexHandler)
	return mux
}

func (s *devServer) serveBuildFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir := s.current()
		if dir == "" {
			http.Error(w, "build in progress", http.StatusServiceUnavailable)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// rebuild builds appDir and swaps the result in.
func (s *devServer) rebuild(appDir string) error {
	fmt.Println("Rebuilding...")
	dir, err := buildWASM(appDir, true)
	if err != nil {
		return fmt.Errorf("error rebuilding WASM: %w", err)
	}
	if old := s.swap(dir); old != "" {
		os.RemoveAll(old)
	}
	fmt.Println("Rebuild complete")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	appDir := cfg.appDir(args)
	if err := checkMainPackage(appDir); err != nil {
		return err
	}

	fmt.Printf("Building WASM bundle in %s...\n", appDir)
	buildDir, err := buildWASM(appDir, true)
	if err != nil {
		return fmt.Errorf("error building WASM: %w", err)
	}
	srv := &devServer{buildDir: buildDir}
	defer func() { os.RemoveAll(srv.current()) }()

	go func() {
		if err := watchFiles(appDir, func() error { return srv.rebuild(appDir) }); err != nil {
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}()

	port, ln, err := findFreePort(cfg.Port)
	if err != nil {
		return fmt.Errorf("error finding free port: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Serving %s on port %d...\n", appDir, port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- (&http.Server{Handler: srv.handler()}).Serve(ln)
	}()

	if cfg.Open {
		url := fmt.Sprintf("http://localhost:%d", port)
		select {
		case err := <-serverErr:
			return err
		case <-time.After(100 * time.Millisecond):
		}
		if err := open(url); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open browser: %v\n", err)
		}
	}

	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// findFreePort listens on preferredPort, or on any free port if it is taken.
func findFreePort(preferredPort int) (int, net.Listener, error) {
	if preferredPort > 0 {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", preferredPort))
		if err == nil {
			return preferredPort, ln, nil
		}
		fmt.Printf("Port %d is in use, finding alternative...\n", preferredPort)
	}
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, nil, err
	}
	return ln.Addr().(*net.TCPAddr).Port, ln, nil
}
