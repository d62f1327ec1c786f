package appgate

// Version 本模块的语义化版本
const Version = "0.0.1"
