package testutil

// DocuSignHCL is the reference application manifest in HCL.
const DocuSignHCL = `
plugins {
  id     = ["com.android.application"]
  kotlin = ["android"]
}

android {
  compile_sdk = 33

  default_config {
    application_id = "com.example.flutter_docusign_app"
    min_sdk        = 21
    target_sdk     = 33
    version_code   = 1
    version_name   = "1.0"
  }

  build_type "release" {
    minify_enabled         = false
    default_proguard_files = ["proguard-android-optimize.txt"]
    proguard_files         = ["proguard-rules.pro"]
  }
}

kotlin_options {
  jvm_target = "1.8"
}

dependencies {
  implementation = [
    "org.jetbrains.kotlin:kotlin-stdlib:1.7.10",
    "com.google.android.material:material:1.6.1",
    "androidx.appcompat:appcompat:1.4.2",
    "androidx.core:core-ktx:1.8.0",
    "androidx.lifecycle:lifecycle-runtime-ktx:2.5.1",
    "com.github.barteksc:android-pdf-viewer:3.2.0-beta.1",
    "com.github.gcacace:signature-pad:1.0.0",
  ]
}
`

// DocuSignYAML describes the same build as DocuSignHCL.
const DocuSignYAML = `
plugins:
  id: [com.android.application]
  kotlin: [android]
android:
  compileSdk: 33
  defaultConfig:
    applicationId: com.example.flutter_docusign_app
    minSdk: 21
    targetSdk: 33
    versionCode: 1
    versionName: 1.0
  buildTypes:
    - name: release
      minifyEnabled: false
      defaultProguardFiles: [proguard-android-optimize.txt]
      proguardFiles: [proguard-rules.pro]
kotlinOptions:
  jvmTarget: 1.8
dependencies:
  - org.jetbrains.kotlin:kotlin-stdlib:1.7.10
  - com.google.android.material:material:1.6.1
  - androidx.appcompat:appcompat:1.4.2
  - androidx.core:core-ktx:1.8.0
  - androidx.lifecycle:lifecycle-runtime-ktx:2.5.1
  - com.github.barteksc:android-pdf-viewer:3.2.0-beta.1
  - com.github.gcacace:signature-pad:1.0.0
`

// DocuSignCoordinates lists the fixture dependencies in declaration order.
var DocuSignCoordinates = []string{
	"org.jetbrains.kotlin:kotlin-stdlib:1.7.10",
	"com.google.android.material:material:1.6.1",
	"androidx.appcompat:appcompat:1.4.2",
	"androidx.core:core-ktx:1.8.0",
	"androidx.lifecycle:lifecycle-runtime-ktx:2.5.1",
	"com.github.barteksc:android-pdf-viewer:3.2.0-beta.1",
	"com.github.gcacace:signature-pad:1.0.0",
}
