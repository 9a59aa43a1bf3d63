package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-padplay/audio"
	"go-padplay/handler"
	"go-padplay/midi"
	"go-padplay/pads"
	"go-padplay/snapshot"
	"go-padplay/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "detect":
		detectLaunchpad()
	case "sysex":
		testSysEx()
	case "leds":
		testLEDs()
	case "poll":
		pollDevices()
	case "monitor":
		monitor()
	case "render":
		if err := render(os.Args[2:]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list                  - List all MIDI ports")
	fmt.Println("  detect                - Find Launchpad Pro")
	fmt.Println("  sysex                 - Send programmer mode SysEx")
	fmt.Println("  leds                  - Test LED control")
	fmt.Println("  poll                  - Poll for device changes")
	fmt.Println("  monitor               - Print incoming controller messages")
	fmt.Println("  render <mode> <file>  - Write a PNG of a mode's start-up lighting")
}

func findPorts() (drivers.In, drivers.Out) {
	var in drivers.In
	var out drivers.Out
	for _, p := range gomidi.GetInPorts() {
		if midi.MatchPort(p.String(), midi.DefaultPortName) {
			in = p
			break
		}
	}
	for _, p := range gomidi.GetOutPorts() {
		if midi.MatchPort(p.String(), midi.DefaultPortName) {
			out = p
			break
		}
	}
	return in, out
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := gomidi.GetInPorts()
		outs := gomidi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func detectLaunchpad() {
	fmt.Printf("Looking for %q...\n", midi.DefaultPortName)

	in, out := findPorts()
	if in != nil {
		fmt.Printf("Found input: %s\n", in.String())
	}
	if out != nil {
		fmt.Printf("Found output: %s\n", out.String())
	}

	if in != nil && out != nil {
		fmt.Println("\nLaunchpad Pro detected!")
	} else {
		fmt.Println("\nLaunchpad Pro not found")
	}
}

func openOutput() func(gomidi.Message) error {
	_, outPort := findPorts()
	if outPort == nil {
		fmt.Println("No Launchpad found")
		return nil
	}
	fmt.Printf("Using output: %s\n", outPort.String())

	send, err := gomidi.SendTo(outPort)
	if err != nil {
		fmt.Printf("Error opening port: %v\n", err)
		return nil
	}
	return send
}

func testSysEx() {
	fmt.Println("Sending SysEx to switch to Programmer mode...")

	send := openOutput()
	if send == nil {
		return
	}

	fmt.Printf("Sending: % X\n", []byte(midi.ProgrammerMode()))
	if err := send(midi.ProgrammerMode()); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("Done! Launchpad should now be in Programmer mode")
}

func testLEDs() {
	fmt.Println("Testing LED control...")

	send := openOutput()
	if send == nil {
		return
	}

	// First ensure programmer mode
	send(midi.ProgrammerMode())
	time.Sleep(100 * time.Millisecond)

	fmt.Println("Lighting up diagonal (green), pulsing the corners...")
	for i := 0; i < 8; i++ {
		pad := pads.RowColToPad(i, i)
		send(midi.EncodeLight(pad, 21))
		time.Sleep(100 * time.Millisecond)
	}
	send(midi.EncodePulse(pads.RowColToPad(0, 7), 5))
	send(midi.EncodePulse(pads.RowColToPad(7, 0), 5))

	fmt.Println("Press Enter to clear...")
	fmt.Scanln()

	for _, pad := range pads.GridPads() {
		send(midi.EncodeLight(pad, 0))
	}

	fmt.Println("Done!")
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect Launchpad to test. Ctrl+C to exit.")

	lastIn := ""
	lastOut := ""

	for {
		ins := gomidi.GetInPorts()
		outs := gomidi.GetOutPorts()

		var inNames, outNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}
		for _, p := range outs {
			outNames = append(outNames, p.String())
		}

		currentIn := strings.Join(inNames, ",")
		currentOut := strings.Join(outNames, ",")

		if currentIn != lastIn || currentOut != lastOut {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			fmt.Printf("  Outputs: %v\n", outNames)

			for _, name := range inNames {
				if midi.MatchPort(name, midi.DefaultPortName) {
					fmt.Println("  -> Launchpad Pro detected!")
				}
			}

			lastIn = currentIn
			lastOut = currentOut
		}

		time.Sleep(2 * time.Second)
	}
}

func monitor() {
	inPort, _ := findPorts()
	if inPort == nil {
		fmt.Println("No Launchpad found")
		return
	}
	fmt.Printf("Listening on %s. Press Enter to stop.\n", inPort.String())

	stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
		fmt.Printf("[%6d] %v  %s\n", timestampms, []byte(msg), msg.String())
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer stop()
	fmt.Scanln()
}

// render runs a mode's start-up lighting against a mirror and draws it
func render(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: render <raw|simon|keyboard> <file.png>")
	}
	mode, err := handler.ParseMode(args[0])
	if err != nil {
		return err
	}
	h, err := handler.New(mode, handler.Deps{Synth: audio.NewEngine(audio.DefaultParams())})
	if err != nil {
		return err
	}

	mirror := midi.NewMirror(nil)
	h.Start(mirror)

	if err := snapshot.SavePNG(args[1], theme.LaunchpadPalette(), mirror.LED, true); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d pads lit)\n", args[1], mirror.Sent())
	return nil
}
