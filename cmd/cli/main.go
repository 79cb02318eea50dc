// Command cli drives the solver against a judge (the bundled local
// practice server, or a remote judge URL) across a full 200-board game,
// optionally hosting a spectator websocket feed so cmd/tui or a browser
// can watch the solve in progress.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/callegarimattia/battleship/internal/belief"
	"github.com/callegarimattia/battleship/internal/board"
	"github.com/callegarimattia/battleship/internal/client"
	"github.com/callegarimattia/battleship/internal/dto"
	"github.com/callegarimattia/battleship/internal/enumerate"
	"github.com/callegarimattia/battleship/internal/env"
	"github.com/callegarimattia/battleship/internal/propagate"
	"github.com/callegarimattia/battleship/internal/targeting"
)

func main() {
	cfg, err := env.LoadClientConfig()
	if err != nil {
		log.Fatalf("failed to load client config: %v", err)
	}

	judgeURL := flag.String("judge-url", cfg.JudgeBaseURL, "base URL of the judge to play against")
	token := flag.String("token", cfg.JudgeToken, "bearer token identifying this player to the judge")
	watchAddr := flag.String("watch-addr", "", "optional address to host the spectator websocket feed on, e.g. :9000")
	rps := flag.Float64("rps", 5, "maximum outbound requests per second to the judge")
	seed := flag.Int64("seed", cfg.RNGSeed, "RNG seed for targeting tie-breaks and Monte Carlo sampling")
	biasesFile := flag.String("biases-file", "", "optional path to a biases grid set written by cmd/biastool")
	flag.Parse()

	biases := enumerate.DefaultBiases()
	if *biasesFile != "" {
		loaded, err := enumerate.LoadBiases(*biasesFile)
		if err != nil {
			log.Fatalf("failed to load biases: %v", err)
		}
		biases = loaded
	}

	var hub *client.Hub
	if *watchAddr != "" {
		hub = client.NewHub()
		mux := http.NewServeMux()
		mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
			if err := hub.Upgrade(w, r); err != nil {
				log.Printf("spectator upgrade failed: %v", err)
			}
		})
		go func() {
			log.Printf("spectator feed listening on %s/watch", *watchAddr)
			if err := http.ListenAndServe(*watchAddr, mux); err != nil {
				log.Printf("spectator server stopped: %v", err)
			}
		}()
	}

	judge := client.New(*judgeURL, *token, *rps)
	rng := rand.New(rand.NewSource(*seed))

	totalShots, boards, err := playGame(context.Background(), judge, rng, hub, biases)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game stopped after %d boards, %d shots: %v\n", boards, totalShots, err)
		os.Exit(1)
	}

	fmt.Printf("game complete: %d boards cleared, %d total shots fired\n", boards, totalShots)
}

// playGame solves boards one at a time until the judge reports the game
// is over (no maps remain), returning the cumulative shot and board
// counts.
func playGame(
	ctx context.Context,
	judge *client.JudgeClient,
	rng *rand.Rand,
	hub *client.Hub,
	biases enumerate.Biases,
) (shots, boards int, err error) {
	for {
		boardShots, solveErr := solveOneBoard(ctx, judge, rng, hub, biases)
		shots += boardShots

		if solveErr != nil {
			if isGameOver(solveErr) {
				return shots, boards, nil
			}
			return shots, boards, solveErr
		}
		boards++
	}
}

// solveOneBoard fires shots until the judge reports the current board
// fully discovered.
func solveOneBoard(
	ctx context.Context,
	judge *client.JudgeClient,
	rng *rand.Rand,
	hub *client.Hub,
	biases enumerate.Biases,
) (shots int, err error) {
	status, err := judge.Status(ctx)
	if err != nil {
		return shots, err
	}

	m := belief.New()
	if err := m.UpdateFromGrid(status.Grid, status.AvengerAvailable); err != nil {
		return shots, err
	}
	if _, err := propagate.Run(m); err != nil {
		return shots, err
	}
	broadcast(hub, status)

	for !status.Finished {
		result := enumerate.Enumerate(m, rng, enumerate.DefaultOptions())
		enumerate.SynthesizeHeatMap(m, result, biases)

		x, y, shotErr := targeting.NextShot(m, rng, status.MoveCount < 20)
		if shotErr != nil {
			return shots, shotErr
		}

		if avenger, ok := targeting.DecideAvenger(m, result, status.MoveCount); ok && status.AvengerAvailable {
			resp, fireErr := judge.FireAvenger(ctx, y, x, string(avenger))
			if fireErr != nil {
				return shots, fireErr
			}
			shots++
			status = resp.FireResponse

			if avenger == board.IronMan {
				for _, hit := range resp.AvengerResult {
					if !hit.Hit {
						continue
					}
					if err := m.ApplyIronManHint(hit.MapPoint.Y, hit.MapPoint.X); err != nil {
						return shots, err
					}
				}
			}
		} else {
			resp, fireErr := judge.Fire(ctx, y, x)
			if fireErr != nil {
				return shots, fireErr
			}
			shots++
			status = resp
		}

		if err := m.UpdateFromGrid(status.Grid, status.AvengerAvailable); err != nil {
			return shots, err
		}
		if _, err := propagate.Run(m); err != nil {
			return shots, err
		}
		broadcast(hub, status)
	}

	return shots, nil
}

// broadcast pushes the latest FireResponse to any connected spectators.
// hub is nil (and Broadcast a no-op) unless -watch-addr was given.
func broadcast(hub *client.Hub, status dto.FireResponse) {
	hub.Broadcast(dto.SpectatorSnapshot{
		MapID:     fmt.Sprintf("map-%d", status.MapID),
		MoveCount: status.MoveCount,
		Grid:      status.Grid,
		Finished:  status.Finished,
	})
}

// isGameOver reports whether err is the judge's 404 "no maps remain"
// response, the clean end-of-game signal rather than a real failure.
func isGameOver(err error) bool {
	var statusErr *client.StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
