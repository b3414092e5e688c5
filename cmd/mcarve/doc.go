// Command mcarve converts elevation raster tiles into Minecraft Anvil
// region files through a two-stage, crash-recoverable batch pipeline.
package main
