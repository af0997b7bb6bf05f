package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/ivlev/keyframe/internal/channel"
	"github.com/ivlev/keyframe/internal/config"
	"github.com/ivlev/keyframe/internal/runner"
	"github.com/ivlev/keyframe/internal/scenario"
	"github.com/ivlev/keyframe/internal/stream"
	"github.com/ivlev/keyframe/internal/system"
)

// buildVersion is set with -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

const benchmarkLog = "benchmark.log"

func usage() {
	fmt.Fprintf(os.Stderr, "Использование: %s <play|eval|bake|new> [флаги] [сценарии...]\n", filepath.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "  play  воспроизвести сценарий в реальном времени")
	fmt.Fprintln(os.Stderr, "  eval  вывести значения каналов на кадре")
	fmt.Fprintln(os.Stderr, "  bake  запечь анимации сценариев в покадровые ключи")
	fmt.Fprintln(os.Stderr, "  new   сгенерировать демонстрационный сценарий")
	fmt.Fprintf(os.Stderr, "Без пути используется самый свежий файл в %s/\n", scenario.DefaultDir)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := &config.Config{
		TickRate:     60,
		Workers:      1,
		BuildVersion: buildVersion,
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, os.Args[2:])
	case "eval":
		err = runEval(cfg, os.Args[2:])
	case "bake":
		err = runBake(cfg, os.Args[2:])
	case "new":
		err = runNew(cfg, os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		usage()
		log.Fatalf("[-] Неизвестная команда: %s", os.Args[1])
	}
	if err != nil {
		log.Fatalf("[-] Ошибка: %v", err)
	}
}

// playbackFlags registers the overrides shared by every subcommand.
func playbackFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.Float64Var(&cfg.FPS, "fps", 0, "Частота кадров (0 - из сценария)")
	fs.IntVar(&cfg.TotalFrames, "frames", 0, "Всего кадров (0 - из сценария)")
	fs.Float64Var(&cfg.Speed, "speed", 0, "Множитель скорости, отрицательный - назад (0 - из сценария)")
	fs.StringVar(&cfg.Loop, "loop", "", "Режим повтора: once, repeat, pingpong")
	fs.BoolVar(&cfg.ShowStats, "stats", false, "Показать отчет о производительности")
}

// resolveScenarios falls back to the newest scenario when no path is given.
func resolveScenarios(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	latest, err := scenario.FindLatest(scenario.DefaultDir)
	if err != nil {
		return nil, fmt.Errorf("%w. Положите сценарий в %s/", err, scenario.DefaultDir)
	}
	fmt.Printf("[*] Выбран сценарий: %s\n", latest)
	return []string{latest}, nil
}

func loadSession(cfg *config.Config) (*scenario.Session, error) {
	s, err := scenario.LoadFile(cfg.ScenarioPaths[0])
	if err != nil {
		return nil, err
	}
	if err := cfg.Override(s.Controller); err != nil {
		return nil, fmt.Errorf("параметры воспроизведения: %w", err)
	}
	return s, nil
}

func runPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	playbackFlags(fs, cfg)
	fs.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Тиков хост-цикла в секунду")
	durationSec := fs.Float64("duration", 0, "Длительность воспроизведения в секундах (0 - до остановки)")
	fs.StringVar(&cfg.MQTT.URL, "mqtt-url", "", "Адрес MQTT брокера, например tcp://localhost:1883 (пусто - без трансляции)")
	fs.StringVar(&cfg.MQTT.Topic, "mqtt-topic", "keyframe/state", "Топик для состояния сцены")
	fs.StringVar(&cfg.MQTT.ClientID, "mqtt-client-id", "keyframe", "MQTT client id")
	fs.StringVar(&cfg.MQTT.Username, "mqtt-user", "", "MQTT пользователь")
	fs.StringVar(&cfg.MQTT.Password, "mqtt-password", "", "MQTT пароль")
	fs.IntVar(&cfg.MQTT.QoS, "mqtt-qos", 0, "MQTT QoS: 0, 1, 2")
	fs.Parse(args)

	cfg.Duration = time.Duration(*durationSec * float64(time.Second))
	paths, err := resolveScenarios(fs.Args())
	if err != nil {
		return err
	}
	cfg.ScenarioPaths = paths
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(paths) > 1 {
		log.Printf("[!] Воспроизводится только первый сценарий: %s", paths[0])
	}

	session, err := loadSession(cfg)
	if err != nil {
		return err
	}

	var streamer *stream.Streamer
	if cfg.MQTT.Enabled() {
		pub, err := stream.Connect(stream.Options{
			URL:      cfg.MQTT.URL,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
			QoS:      byte(cfg.MQTT.QoS),
		})
		if err != nil {
			return err
		}
		defer pub.Close()
		streamer = stream.NewStreamer(pub, cfg.MQTT.Topic)
		fmt.Printf("[*] Трансляция: %s -> %s\n", cfg.MQTT.URL, cfg.MQTT.Topic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	snap := session.Controller.Snapshot()
	fmt.Println("--- [PLAYBACK] ---")
	fmt.Printf("[*] Сценарий: %s | Объектов: %d | Анимаций: %d\n",
		paths[0], session.Scene.Len(), len(session.Engine.Animations()))
	fmt.Printf("[*] Кадров: %d @ %.2f FPS | Скорость: %.2f | Повтор: %s | Тик: %d/с\n",
		snap.TotalFrames, snap.FrameRate, snap.Speed, snap.Loop, cfg.TickRate)
	fmt.Println("------------------")

	start := time.Now()
	player := runner.NewPlayer(session, streamer, cfg.TickInterval())
	if err := player.Run(ctx); err != nil {
		return err
	}

	fmt.Printf("[+++] Готово: кадр %.2f, тиков %d, отправлено %d\n",
		session.Controller.Frame(), player.Ticks(), player.Published())

	report(cfg, filepath.Base(paths[0]), system.Stats{
		Elapsed:   time.Since(start),
		Frames:    player.Ticks(),
		Published: player.Published(),
	})
	return nil
}

func runEval(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	playbackFlags(fs, cfg)
	fs.Float64Var(&cfg.Frame, "frame", 1, "Кадр для вычисления (ограничивается диапазоном)")
	fs.Parse(args)

	paths, err := resolveScenarios(fs.Args())
	if err != nil {
		return err
	}
	cfg.ScenarioPaths = paths
	if err := cfg.Validate(); err != nil {
		return err
	}

	session, err := loadSession(cfg)
	if err != nil {
		return err
	}
	session.Controller.SetFrame(cfg.Frame)
	frame := session.Controller.Frame()

	fmt.Printf("[*] Кадр %.2f\n", frame)
	for _, a := range session.Engine.Animations() {
		values := session.Engine.Evaluate(a.ID, frame)
		state := "on"
		if !a.Enabled {
			state = "off"
		}
		fmt.Printf("%s -> %s [%s]\n", a.Name, a.TargetID, state)
		for _, key := range channel.All() {
			if v, ok := values[key]; ok {
				fmt.Printf("    %-20s %10.4f\n", key, v)
			}
		}
	}
	return nil
}

func runBake(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("bake", flag.ExitOnError)
	playbackFlags(fs, cfg)
	fs.StringVar(&cfg.OutputPath, "out", "", "Папка для результатов (пусто - рядом с исходником)")
	fs.IntVar(&cfg.BakeStart, "start", 0, "Первый кадр (0 и -end 0 - диапазон ключей каждой анимации)")
	fs.IntVar(&cfg.BakeEnd, "end", 0, "Последний кадр")
	fs.BoolVar(&cfg.BakePlayback, "playback-range", false, "Запекать весь диапазон воспроизведения [1, frames] (вместо -start/-end)")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Потоки")
	fs.Parse(args)

	paths, err := resolveScenarios(fs.Args())
	if err != nil {
		return err
	}
	cfg.ScenarioPaths = paths
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.OutputPath != "" {
		if err := os.MkdirAll(cfg.OutputPath, 0755); err != nil {
			return err
		}
	}

	jobs := make([]runner.BakeJob, len(paths))
	for i, p := range paths {
		jobs[i] = runner.BakeJob{
			Input:    p,
			Output:   runner.OutputPath(p, cfg.OutputPath),
			Start:    cfg.BakeStart,
			End:      cfg.BakeEnd,
			Playback: cfg.BakePlayback,
		}
	}

	fmt.Printf("[*] Запекание: %d сценариев, потоков %d\n", len(jobs), cfg.Workers)
	start := time.Now()
	results, err := runner.BakeAll(context.Background(), jobs, cfg.Workers)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		total += r.Keyframes
	}
	fmt.Printf("[+++] Успех! Запечено ключей: %d\n", total)

	report(cfg, fmt.Sprintf("%d files", len(paths)), system.Stats{
		Elapsed: time.Since(start),
		Frames:  total,
	})
	return nil
}

func runNew(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	fs.IntVar(&cfg.TotalFrames, "frames", 250, "Всего кадров")
	fs.Float64Var(&cfg.FPS, "fps", 24, "Частота кадров")
	objects := fs.Int("objects", 5, "Количество объектов")
	fs.StringVar(&cfg.OutputPath, "out", "", "Путь к сценарию (пусто - новый файл в scenarios/)")
	fs.Parse(args)

	g := scenario.NewGenerator(cfg.TotalFrames)
	g.FrameRate = cfg.FPS
	sc, err := g.Generate(*objects)
	if err != nil {
		return err
	}

	path := cfg.OutputPath
	if path == "" {
		if err := os.MkdirAll(scenario.DefaultDir, 0755); err != nil {
			return err
		}
		path = scenario.GeneratePath(scenario.DefaultDir, "scenario")
	}
	if err := scenario.WriteScenario(sc, path); err != nil {
		return err
	}
	fmt.Printf("[+++] Сценарий сохранен: %s\n", path)
	return nil
}

func report(cfg *config.Config, name string, stats system.Stats) {
	if !cfg.ShowStats {
		return
	}
	stats.Build = cfg.BuildVersion
	stats, err := system.Collect(stats)
	if err != nil {
		log.Printf("[!] Не удалось получить статистику процесса: %v", err)
	}
	fmt.Print(stats.Report())

	if err := system.AppendLog(benchmarkLog, stats.LogLine(name)); err != nil {
		fmt.Printf("[!] Не удалось записать %s: %v\n", benchmarkLog, err)
	}
}
