package services

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"lss/internal/domain"
)

const (
	gitMarkerTag     = 'G'
	gitStatusTimeout = 2 * time.Second
)

// runGit is replaced in tests.
var runGit = func(ctx context.Context, workTree string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", workTree}, args...)...)
	return cmd.Output()
}

// GitMarker marks the work tree owning a .git directory: G/OK when clean,
// G/MINOR with untracked files, G/MAJOR when dirty. Running git status
// rewrites the index inside .git, so the .git timestamps are restored after
// the inspection.
func GitMarker(file *domain.File) (domain.Mark, error) {
	if file.Name() != ".git" || !file.IsDir() {
		return domain.Mark{}, nil
	}

	var mark domain.Mark
	err := withTimesPreserved(file, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), gitStatusTimeout)
		defer cancel()
		out, err := runGit(ctx, filepath.Dir(file.Path()), "status", "--porcelain", "--untracked-files=normal")
		if err != nil {
			return NewError(OpMarker, file.Path(), err)
		}
		mark = gitMark(out)
		return nil
	})
	if err != nil {
		return domain.Mark{}, err
	}
	return mark, nil
}

func gitMark(porcelain []byte) domain.Mark {
	untracked, dirty := false, false
	scanner := bufio.NewScanner(bytes.NewReader(porcelain))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "??") {
			untracked = true
		} else {
			dirty = true
		}
	}
	switch {
	case untracked:
		return domain.Mark{Tag: gitMarkerTag, Level: domain.LevelMinor}
	case dirty:
		return domain.Mark{Tag: gitMarkerTag, Level: domain.LevelMajor}
	default:
		return domain.Mark{Tag: gitMarkerTag, Level: domain.LevelOK}
	}
}
