// Panel rendering for the SFX editor.
package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/sfx-editor/internal/editor"
	"github.com/Faultbox/sfx-editor/pkg/sfx"
)

// renderViewer renders the read-only document with field values
// highlighted in their channel colour.
func (app *App) renderViewer() {
	if app.session.State() == editor.StateNoFile {
		imgui.TextDisabled("Open a particle effect file (Ctrl+O)")
		return
	}

	imgui.Text("File:")
	imgui.SameLine()
	imgui.TextWrapped(app.session.Path())
	imgui.Separator()

	doc := app.session.Document()
	if doc != app.viewerDoc || app.viewerLines == nil {
		app.viewerDoc = doc
		app.viewerLines = buildViewerLines(doc, app.session.Occurrences())
	}

	flags := imgui.WindowFlagsHorizontalScrollbar
	if imgui.BeginChildStrV("FileViewer", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, flags) {
		for _, line := range app.viewerLines {
			if len(line) == 0 {
				imgui.TextUnformatted("")
				continue
			}
			for i, seg := range line {
				if i > 0 {
					imgui.SameLineV(0, 0)
				}
				if seg.highlight {
					imgui.PushStyleColorVec4(imgui.ColText, channelColors[seg.channel])
					imgui.TextUnformatted(seg.text)
					imgui.PopStyleColor()
					if imgui.IsItemHovered() {
						imgui.SetTooltip(fmt.Sprintf("%s channel", seg.channel))
					}
					continue
				}
				imgui.TextUnformatted(seg.text)
			}
		}
	}
	imgui.EndChild()
}

// renderValuesGrid renders the values currently stored in the file.
func (app *App) renderValuesGrid() {
	imgui.Text("Current Values")

	values := app.session.Values()
	tableFlags := imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("valuesTable", sfx.NumKeyframes+1, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Channel")
		imgui.TableSetupColumn("Start")
		imgui.TableSetupColumn("End")
		imgui.TableSetupColumn("Trans")
		imgui.TableHeadersRow()

		for _, ch := range sfx.Channels {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.TextColored(channelColors[ch], ch.String())
			for _, kf := range sfx.Keyframes {
				imgui.TableNextColumn()
				imgui.TextUnformatted(values.FormatLookup(kf, ch))
			}
		}
		imgui.EndTable()
	}
}

// renderSliders renders one 0-1 slider per channel.
func (app *App) renderSliders() {
	imgui.Text("Color Controls")

	channels := app.session.Channels()
	for _, ch := range sfx.Channels {
		v := float32(channels.Get(ch))
		imgui.PushStyleColorVec4(imgui.ColSliderGrab, channelColors[ch])
		imgui.SetNextItemWidth(-70)
		if imgui.SliderFloatV(ch.String(), &v, 0, 1, "%.3f", imgui.SliderFlagsAlwaysClamp) {
			channels.Set(ch, float64(v))
		}
		imgui.PopStyleColor()
	}
}

// renderColorPreview renders the swatch, hex field and colour picker.
func (app *App) renderColorPreview() {
	imgui.Text("Color Preview")

	channels := app.session.Channels()
	col := channels.Color()
	r, g, b := channels.RGB8()
	swatch := imgui.NewVec4(float32(editor.FromByte(r)), float32(editor.FromByte(g)), float32(editor.FromByte(b)), 1)

	clicked := imgui.ColorButtonV("##swatch", swatch,
		imgui.ColorEditFlagsNoAlpha|imgui.ColorEditFlagsNoTooltip,
		imgui.NewVec2(SwatchWidth, SwatchHeight))
	if imgui.IsItemHovered() {
		imgui.SetTooltip("Click to choose a colour")
	}

	imgui.SameLine()
	imgui.BeginGroup()
	imgui.Text(editor.Hex(col))
	imgui.TextDisabled(fmt.Sprintf("Alpha %s", sfx.FormatDisplay(col[sfx.Alpha])))
	if imgui.Button("Choose Color...") {
		clicked = true
	}
	imgui.EndGroup()

	imgui.PushStyleColorVec4(imgui.ColFrameBg, InputBackground)
	imgui.SetNextItemWidth(120)
	if imgui.InputTextWithHint("##hex", "#RRGGBB", &app.hexInput, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		app.applyHex(app.hexInput)
	}
	imgui.PopStyleColor()
	imgui.SameLine()
	if imgui.Button("Set Hex") {
		app.applyHex(app.hexInput)
	}

	if clicked {
		app.pickerColor = [3]float32{
			float32(editor.FromByte(r)),
			float32(editor.FromByte(g)),
			float32(editor.FromByte(b)),
		}
		imgui.OpenPopupStr(ColorPickerPopup)
	}
	app.renderColorPicker()
}

// renderColorPicker renders the modal colour chooser. OK maps the chosen
// 0-255 components back to the sliders; Cancel leaves them unchanged.
func (app *App) renderColorPicker() {
	if !imgui.BeginPopupModalV(ColorPickerPopup, nil, imgui.WindowFlagsAlwaysAutoResize) {
		return
	}

	imgui.ColorPicker3V("##picker", &app.pickerColor,
		imgui.ColorEditFlagsNoAlpha|imgui.ColorEditFlagsDisplayRGB|imgui.ColorEditFlagsInputRGB)

	if imgui.ButtonV("OK", imgui.NewVec2(120, 0)) {
		app.session.Channels().SetRGB8(
			editor.ToByte(float64(app.pickerColor[0])),
			editor.ToByte(float64(app.pickerColor[1])),
			editor.ToByte(float64(app.pickerColor[2])),
		)
		imgui.CloseCurrentPopup()
	}
	imgui.SameLine()
	if imgui.ButtonV("Cancel", imgui.NewVec2(120, 0)) {
		imgui.CloseCurrentPopup()
	}
	imgui.EndPopup()
}

// applyHex sets the RGB sliders from a hex string typed by the user.
func (app *App) applyHex(s string) {
	r, g, b, err := editor.ParseHex(s)
	if err != nil {
		app.setStatus(err.Error(), true)
		return
	}
	app.session.Channels().SetRGB(r, g, b)
	app.hexInput = editor.Hex(app.session.Channels().Color())
}

// renderPresets renders one button per quick colour.
func (app *App) renderPresets() {
	imgui.Text("Presets")

	for i, p := range app.presets {
		if i > 0 && i%4 != 0 {
			imgui.SameLine()
		}
		col := imgui.NewVec4(float32(p.Red), float32(p.Green), float32(p.Blue), 1)
		imgui.PushStyleColorVec4(imgui.ColButton, col)
		if imgui.ButtonV(p.Name, imgui.NewVec2(90, 0)) {
			p.ApplyTo(app.session.Channels())
			app.setStatus(fmt.Sprintf("Preset: %s", p.Name), false)
		}
		imgui.PopStyleColor()
	}
}

// renderApply renders the apply button.
func (app *App) renderApply() {
	disabled := app.session.State() == editor.StateNoFile
	if disabled {
		imgui.BeginDisabled()
	}
	if imgui.ButtonV("Apply Changes", imgui.NewVec2(-1, 40)) {
		app.ApplyChanges()
	}
	if disabled {
		imgui.EndDisabled()
	}

	imgui.TextDisabled("Start, End and Transition are all set to the slider value.")
}
