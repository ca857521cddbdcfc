// Package scsstypes generates TypeScript declaration files for CSS modules.
//
// For every style module matched by a glob, scsstypes compiles the source,
// collects its locally scoped class names and writes a sibling ".d.ts" file
// describing them, so editors and type checkers know which keys exist:
//
//	// src/button.module.scss.d.ts
//	export interface Styles {
//	  button: string;
//	  buttonActive: string;
//	}
//
//	declare const styles: Styles;
//
//	export default styles;
//
// # One-shot generation
//
//	engine, err := scsstypes.NewEngine(scsstypes.DefaultOptions(), scsstypes.Settings{})
//	if err != nil {
//		return err
//	}
//	defer engine.Close()
//	summary, err := engine.Run(ctx)
//
// # Dev-server integration
//
// Plugin exposes the two lifecycle hooks a dev server drives: ConfigResolved
// once at startup and WatchChange for every changed file.
//
// # CLI Tool
//
//	go install github.com/yacobolo/scsstypes/cmd/scsstypes@latest
package scsstypes
