// Color constants for the SFX editor.
package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// UI background colors
var (
	BackgroundColor = [4]float32{0.165, 0.173, 0.180, 1.0} // #2A2C2E
	InputBackground = imgui.NewVec4(0.227, 0.235, 0.243, 1.0)
	MutedTextColor  = imgui.NewVec4(0.6, 0.6, 0.6, 1.0)
)

// Status colors
var (
	StatusOKColor      = imgui.NewVec4(0.271, 0.627, 0.094, 1.0) // #45A018
	StatusErrorColor   = imgui.NewVec4(0.847, 0.157, 0.0, 1.0)   // #D82800
	StatusPendingColor = imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
)

// channelColors highlights each channel's values in the viewer and grid.
var channelColors = [sfx.NumChannels]imgui.Vec4{
	sfx.Red:   imgui.NewVec4(0.847, 0.157, 0.0, 1.0),   // #D82800
	sfx.Green: imgui.NewVec4(0.271, 0.627, 0.094, 1.0), // #45A018
	sfx.Blue:  imgui.NewVec4(0.184, 0.584, 0.847, 1.0), // #2F95D8
	sfx.Alpha: imgui.NewVec4(0.85, 0.85, 0.85, 1.0),
}
